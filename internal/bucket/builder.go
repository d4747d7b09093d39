package bucket

// seedKeys is the full set of single-character keys pre-created when empty
// buckets are requested: digits 0-9 followed by letters a-z.
const seedKeys = "0123456789abcdefghijklmnopqrstuvwxyz"

// Build groups entries into a table keyed by each entry's derived key.
//
// When includeEmpty is set, all 36 digit/letter keys are pre-seeded with
// empty buckets so the result always covers the whole alphabet. Entries
// whose key cannot be derived (empty names) are skipped and returned so the
// caller can report them; they never abort the build.
//
// Returns the table, the count of entries assigned, and the skipped entries.
func Build(entries []Entry, includeEmpty bool) (*Table, int, []Entry) {
	table := NewTable()

	if includeEmpty {
		for _, r := range seedKeys {
			table.Put(&Bucket{Key: string(r)})
		}
	}

	var skipped []Entry
	total := 0
	for _, e := range entries {
		key, err := DeriveKey(e.Name)
		if err != nil {
			skipped = append(skipped, e)
			continue
		}
		table.Append(key, e)
		total++
	}

	return table, total, skipped
}
