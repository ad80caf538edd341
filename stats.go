package warddelay

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Band is the closed deviation interval counted as on time, in minutes.
type Band struct {
	Min float64
	Max float64
}

// ComputeStats summarizes a set of deviations against the on-time band.
// Deviations below Min count as early, above Max as late. Returns false for
// an empty set.
func ComputeStats(deviations []float64, band Band) (StatsSummary, bool) {
	n := len(deviations)
	if n == 0 {
		return StatsSummary{}, false
	}

	early, late := 0, 0
	for _, d := range deviations {
		switch {
		case d < band.Min:
			early++
		case d > band.Max:
			late++
		}
	}
	onTime := n - early - late

	return StatsSummary{
		AvgDelay:    round1(stat.Mean(deviations, nil)),
		MedianDelay: round1(median(deviations)),
		PctOnTime:   round1(100 * float64(onTime) / float64(n)),
		PctLate:     round1(100 * float64(late) / float64(n)),
		PctEarly:    round1(100 * float64(early) / float64(n)),
		SampleCount: n,
	}, true
}

// median averages the two middle samples for even-length input.
func median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
