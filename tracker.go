package warddelay

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/district-mobility/ward-delay-tracker/config"
	"github.com/district-mobility/ward-delay-tracker/geo"
	"github.com/district-mobility/ward-delay-tracker/history"
	"github.com/district-mobility/ward-delay-tracker/mapping"
	"github.com/district-mobility/ward-delay-tracker/store"
)

// RawPosition is a vehicle observation before ward attribution. Deviation is
// nil when the source had no schedule match.
type RawPosition struct {
	VehicleID string
	RouteID   string
	TripID    string
	Deviation *float64
	Lat       float64
	Lon       float64
	Timestamp time.Time
}

// Tracker runs the full aggregation cycle: attribute positions to wards,
// build the live views, synthesize the report views, record run status.
type Tracker struct {
	Cfg   config.AppConfig
	Store store.Store
	Wards *geo.WardIndex

	// Now is the clock; defaults to time.Now.
	Now func() time.Time

	// Monthly and RouteOTP default to the published WMATA tables.
	Monthly  []history.MonthlyReport
	RouteOTP history.RouteOTPTable
}

func NewTracker(cfg config.AppConfig, st store.Store, wards *geo.WardIndex) *Tracker {
	return &Tracker{
		Cfg:      cfg,
		Store:    st,
		Wards:    wards,
		Now:      time.Now,
		Monthly:  history.MonthlyOTP,
		RouteOTP: history.RouteOTP,
	}
}

// Enrich attributes raw positions to wards, dropping observations without a
// deviation or outside every ward boundary.
func (t *Tracker) Enrich(raw []RawPosition) []PositionSample {
	samples := make([]PositionSample, 0, len(raw))
	for _, p := range raw {
		if p.Deviation == nil {
			continue
		}
		ward, ok := t.Wards.WardOf(p.Lat, p.Lon)
		if !ok {
			continue
		}
		samples = append(samples, PositionSample{
			VehicleID: p.VehicleID,
			RouteID:   p.RouteID,
			TripID:    p.TripID,
			Ward:      ward,
			Deviation: *p.Deviation,
			Timestamp: p.Timestamp,
		})
	}
	return samples
}

// Run executes one aggregation cycle over already-attributed samples. fetched
// is the raw observation count before enrichment, recorded in the run status.
func (t *Tracker) Run(samples []PositionSample, routeMeta map[string]mapping.RouteInfo, fetched int) error {
	now := t.Now()
	runID := uuid.NewString()
	log.Printf("tracker: run %s starting: %d/%d positions attributed to wards",
		runID, len(samples), fetched)

	if err := BuildLiveViews(t.Cfg, t.Store, routeMeta, samples, now, runID); err != nil {
		return fmt.Errorf("live views: %w", err)
	}
	if err := BuildHistoricalViews(t.Cfg, t.Store, t.Monthly, t.RouteOTP, now, runID); err != nil {
		return fmt.Errorf("historical views: %w", err)
	}

	status := RunStatus{
		LastRun:              now.UTC().Format(time.RFC3339),
		Status:               "ok",
		Date:                 now.UTC().Format("2006-01-02"),
		RunID:                runID,
		BusPositionsFetched:  fetched,
		WardPositionsMatched: len(samples),
	}
	if err := t.Store.WriteJSON(StatusKey, status); err != nil {
		return fmt.Errorf("write run status: %w", err)
	}
	log.Printf("tracker: run %s complete", runID)
	return nil
}
