package bucket

// DefaultThresholdDivisor derives the automatic threshold: one tenth of the
// total file count, rounded up.
const DefaultThresholdDivisor = 10

// ResolveThreshold returns the effective bucket-size threshold: the
// requested value when positive, otherwise ceil(total/10).
//
// A total of 0 resolves to 0, which Split and Combine treat as "rebalancing
// disabled" (see Split for why a literal zero ceiling cannot work).
func ResolveThreshold(requested, total int) int {
	if requested > 0 {
		return requested
	}
	return (total + DefaultThresholdDivisor - 1) / DefaultThresholdDivisor
}
