package bucket

import "strings"

// Combine merges lexicographically adjacent buckets whose combined size is
// strictly below threshold into a single range-keyed bucket, repeating
// until no adjacent pair qualifies.
//
// The merged key spans the outer edges of both keys: the part of the left
// key before any "-" joined to the part of the right key after any "-", so
// "a" + "b" gives "a-b" and "a-b" + "c" gives "a-c". Entry order is the
// left bucket's entries followed by the right's.
//
// After every merge the scan restarts from the beginning, letting merges
// cascade left to right across passes. Terminates because each merge
// strictly reduces the bucket count. With fewer than two buckets, or a
// threshold <= 0, this is a no-op.
func Combine(t *Table, threshold int) {
	if threshold <= 0 {
		return
	}

	for merged := true; merged; {
		merged = false
		keys := t.Keys()
		for i := 0; i+1 < len(keys); i++ {
			left := t.Get(keys[i])
			right := t.Get(keys[i+1])
			if left.Count()+right.Count() >= threshold {
				continue
			}

			entries := make([]Entry, 0, left.Count()+right.Count())
			entries = append(entries, left.Entries...)
			entries = append(entries, right.Entries...)

			t.Remove(keys[i])
			t.Remove(keys[i+1])
			t.Append(rangeKey(keys[i], keys[i+1]), entries...)

			merged = true
			break
		}
	}
}

// rangeKey builds the merged key for two adjacent bucket keys.
func rangeKey(left, right string) string {
	if i := strings.Index(left, "-"); i >= 0 {
		left = left[:i]
	}
	if i := strings.Index(right, "-"); i >= 0 {
		right = right[i+1:]
	}
	return left + "-" + right
}
