package bucket

// Split breaks every bucket holding more than threshold entries into two
// smaller buckets, repeating until no bucket exceeds the threshold.
//
// Each split carves the first threshold entries (insertion order, no
// sorting) into the start bucket and leaves the remainder in the end
// bucket. A single-character key "a" yields "a1" and "a2". A key that
// already carries a digit suffix only gets a new END key, with the suffix
// incremented ("a2" becomes "a2" and "a3"): the start half is written back
// under its old key. That asymmetry is inherited behavior and is relied on
// by the key sequence tests — do not make it symmetric.
//
// The loop takes a fresh key snapshot per pass and applies at most one
// structural change before re-snapshotting, so it never iterates a stale
// view of the table.
//
// A threshold <= 0 disables splitting entirely: a literal ceiling of zero
// would make every non-empty bucket permanently oversized and the loop
// would never converge.
func Split(t *Table, threshold int) {
	if threshold <= 0 {
		return
	}

	for changed := true; changed; {
		changed = false
		for _, key := range t.Keys() {
			b := t.Get(key)
			if b == nil || b.Count() <= threshold {
				continue
			}

			head := b.Entries[:threshold:threshold]
			tail := b.Entries[threshold:]
			startKey, endKey := splitKeys(key)

			t.Remove(key)
			t.Append(startKey, head...)
			// Append rather than Put: if the end key already exists the
			// entries join that bucket instead of clobbering it.
			t.Append(endKey, tail...)

			changed = true
			break
		}
	}
}

// splitKeys derives the start and end keys for splitting the given key.
// Single-character keys gain "1" and "2" suffixes; longer keys keep the
// start key unchanged and increment the final character for the end key.
func splitKeys(key string) (start, end string) {
	if len(key) == 1 {
		return key + "1", key + "2"
	}
	last := key[len(key)-1]
	return key, key[:len(key)-1] + string(last+1)
}
