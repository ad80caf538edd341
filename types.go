package warddelay

import (
	"fmt"
	"time"
)

// Source tags identify which pipeline produced a summary.
const (
	SourceLive             = "live"
	SourceReport           = "wmata_report"
	SourceReportSystemwide = "wmata_report_systemwide"
)

// StatsSummary is the shared statistical block of every delay view.
type StatsSummary struct {
	AvgDelay    float64 `json:"avg_delay"`
	MedianDelay float64 `json:"median_delay"`
	PctOnTime   float64 `json:"pct_on_time"`
	PctLate     float64 `json:"pct_late"`
	PctEarly    float64 `json:"pct_early"`
	SampleCount int     `json:"sample_count"`
}

// PositionSample is one ward-attributed vehicle observation with a known
// schedule deviation.
type PositionSample struct {
	VehicleID string
	RouteID   string
	TripID    string
	Ward      int
	Deviation float64
	Timestamp time.Time
}

// WardStats is one ward's row in a summary, optionally naming the ward's best
// and worst routes by average delay.
type WardStats struct {
	StatsSummary
	BestRoute  string `json:"best_route,omitempty"`
	WorstRoute string `json:"worst_route,omitempty"`
}

// WardSummary is the per-period ward roll-up document.
type WardSummary struct {
	Period      string               `json:"period"`
	GeneratedAt string               `json:"generated_at"`
	RunID       string               `json:"run_id"`
	DataPoints  int                  `json:"data_points"`
	DaysCovered int                  `json:"days_covered"`
	Source      string               `json:"source"`
	Wards       map[string]WardStats `json:"wards"`
}

// RouteEntry is one route's row in a ward's route breakdown.
type RouteEntry struct {
	RouteID   string `json:"route_id"`
	RouteName string `json:"route_name,omitempty"`
	StatsSummary
}

// WardRoutes is the per-ward per-period route breakdown document.
type WardRoutes struct {
	Ward        int          `json:"ward"`
	Period      string       `json:"period"`
	GeneratedAt string       `json:"generated_at"`
	Routes      []RouteEntry `json:"routes"`
}

// StatusKey names the run status document.
const StatusKey = "data/last-updated.json"

// RunStatus records the outcome of the most recent run.
type RunStatus struct {
	LastRun              string `json:"last_run"`
	Status               string `json:"status"`
	Date                 string `json:"date"`
	RunID                string `json:"run_id"`
	BusPositionsFetched  int    `json:"bus_positions_fetched"`
	WardPositionsMatched int    `json:"ward_positions"`
}

func wardSummaryKey(period string) string {
	return fmt.Sprintf("data/ward-summary-%s.json", period)
}

func wardRoutesKey(ward int, period string) string {
	return fmt.Sprintf("data/ward-%d-routes-%s.json", ward, period)
}
