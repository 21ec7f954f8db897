package service

import "crossover-service/internal/crossover/model"

// Classify compares a candidate capacity against a reference capacity in
// BTU/hr. Tolerance 0 means exact equality; callers that want
// nominal-tonnage granularity round both sides to the same tonnage step
// first, since tonnage steps are not uniform across the size range.
// Total and deterministic: defined for every pair of capacities.
func Classify(referenceBTU, candidateBTU, toleranceBTU int) model.SizeMatch {
	switch {
	case candidateBTU < referenceBTU-toleranceBTU:
		return model.SizeSmaller
	case candidateBTU > referenceBTU+toleranceBTU:
		return model.SizeLarger
	default:
		return model.SizeDirect
	}
}
