package history

import "math"

// MonthlyReport is one month of system-wide bus on-time performance.
// Timepoints is the number of scheduled-stop observations behind the
// percentages and is used as the weighting basis.
type MonthlyReport struct {
	Year       int
	Month      int
	PctOnTime  float64
	PctEarly   float64
	PctLate    float64
	Timepoints int
}

// WindowAverage is a timepoint-weighted average over a slice of monthly rows.
type WindowAverage struct {
	PctOnTime     float64
	PctEarly      float64
	PctLate       float64
	MonthsCovered int
	Timepoints    int
}

// LastMonths returns the most recent n rows of the table; n <= 0 returns the
// whole table. Rows are assumed oldest-first.
func LastMonths(rows []MonthlyReport, n int) []MonthlyReport {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[len(rows)-n:]
}

// Average computes the timepoint-weighted average of the on-time, early and
// late percentages across the rows, rounded to one decimal. Returns false
// for an empty slice or zero total timepoints.
func Average(rows []MonthlyReport) (WindowAverage, bool) {
	if len(rows) == 0 {
		return WindowAverage{}, false
	}
	total := 0
	for _, r := range rows {
		total += r.Timepoints
	}
	if total == 0 {
		return WindowAverage{}, false
	}

	var onTime, early, late float64
	for _, r := range rows {
		w := float64(r.Timepoints)
		onTime += r.PctOnTime * w
		early += r.PctEarly * w
		late += r.PctLate * w
	}
	tw := float64(total)
	return WindowAverage{
		PctOnTime:     round1(onTime / tw),
		PctEarly:      round1(early / tw),
		PctLate:       round1(late / tw),
		MonthsCovered: len(rows),
		Timepoints:    total,
	}, true
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
