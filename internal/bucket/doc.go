// Package bucket implements the grouping and rebalancing core of bucketize.
//
// Files are grouped into buckets keyed by the lowercased first character of
// their name, then rebalanced against a size threshold: buckets larger than
// the threshold are split into digit-suffixed halves, and lexicographically
// adjacent buckets whose combined size stays under the threshold are merged
// into a range-keyed bucket (e.g. "a-c").
//
// The package is pure: it manipulates an in-memory Table and performs no
// filesystem access. The central invariant is conservation — splitting and
// combining partition entries, never duplicate or drop them.
//
// Typical flow:
//
//	table, total, skipped := bucket.Build(entries, opts.IncludeEmpty)
//	threshold := bucket.ResolveThreshold(opts.Threshold, total)
//	if opts.Split {
//	    bucket.Split(table, threshold)
//	}
//	if opts.Combine {
//	    bucket.Combine(table, threshold)
//	}
package bucket
