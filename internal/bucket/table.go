package bucket

import "sort"

// Entry is a single file scheduled for assignment: its base name plus the
// absolute path it currently lives at. Entries are immutable once scanned.
type Entry struct {
	Name string
	Path string
}

// Bucket is a keyed, ordered group of entries. Order is insertion order and
// carries no further meaning.
type Bucket struct {
	Key     string
	Entries []Entry
}

// Count returns the number of entries in the bucket.
func (b *Bucket) Count() int {
	return len(b.Entries)
}

// Table maps bucket keys to buckets. Keys are unique. The union of all
// buckets' entries always equals the set of entries originally assigned.
type Table struct {
	buckets map[string]*Bucket
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{buckets: make(map[string]*Bucket)}
}

// Get returns the bucket for key, or nil if absent.
func (t *Table) Get(key string) *Bucket {
	return t.buckets[key]
}

// Put inserts a bucket under its key, replacing any existing bucket.
func (t *Table) Put(b *Bucket) {
	t.buckets[b.Key] = b
}

// Append adds entries to the bucket under key, creating it if absent.
func (t *Table) Append(key string, entries ...Entry) {
	b, ok := t.buckets[key]
	if !ok {
		b = &Bucket{Key: key}
		t.buckets[key] = b
	}
	b.Entries = append(b.Entries, entries...)
}

// Remove deletes the bucket under key, if present.
func (t *Table) Remove(key string) {
	delete(t.buckets, key)
}

// Len returns the number of buckets.
func (t *Table) Len() int {
	return len(t.buckets)
}

// Keys returns a fresh snapshot of all bucket keys in ascending
// lexicographic order. Callers mutating the table must re-snapshot rather
// than keep iterating a stale slice.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.buckets))
	for k := range t.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Buckets returns all buckets in ascending key order.
func (t *Table) Buckets() []*Bucket {
	keys := t.Keys()
	out := make([]*Bucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, t.buckets[k])
	}
	return out
}

// TotalEntries returns the number of entries across all buckets.
func (t *Table) TotalEntries() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b.Entries)
	}
	return n
}
