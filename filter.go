package main

import "math"

// Default amplitude thresholds. Only terms with amplitude larger than
// these values get printed. If the threshold is set too small, then
// amplitudes with large MO # appear -- leading to difficulties in
// comparison between different basis sets.
const (
	SingleThreshold = 0.1
	DoubleThreshold = 0.1
)

type amplitude interface {
	amp() float64
}

// Strong keeps the entries with absolute amplitude strictly above
// threshold, preserving order.
func Strong[T amplitude](terms []T, threshold float64) []T {
	var ret []T
	for _, t := range terms {
		if math.Abs(t.amp()) > threshold {
			ret = append(ret, t)
		}
	}
	return ret
}
