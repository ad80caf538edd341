package warddelay

import (
	"testing"
	"time"

	"github.com/district-mobility/ward-delay-tracker/config"
	"github.com/district-mobility/ward-delay-tracker/geo"
	"github.com/district-mobility/ward-delay-tracker/history"
	"github.com/district-mobility/ward-delay-tracker/store"
)

// single unit-square ward around the origin
func trackerTestWards() *geo.WardIndex {
	return geo.NewWardIndex(map[int][]geo.Ring{
		1: {{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
	})
}

func trackerTestConfig() config.AppConfig {
	return config.AppConfig{
		Wards:  config.WardsConfig{MinID: 1, MaxID: 1},
		OnTime: config.OnTimeBand{Min: -2, Max: 5},
		Periods: config.PeriodsConfig{
			Live:   []config.LiveWindow{{Key: "1d", Days: 1}},
			Report: []config.ReportWindow{{Key: "1m", Months: 1}},
		},
	}
}

func TestEnrich(t *testing.T) {
	tr := NewTracker(trackerTestConfig(), store.NewMemory(), trackerTestWards())

	dev := 3.0
	raw := []RawPosition{
		{VehicleID: "7001", RouteID: "C21", Deviation: &dev, Lat: 0.5, Lon: 0.5},
		{VehicleID: "7002", RouteID: "C21", Deviation: nil, Lat: 0.5, Lon: 0.5},
		{VehicleID: "7003", RouteID: "C21", Deviation: &dev, Lat: 5, Lon: 5},
	}

	samples := tr.Enrich(raw)
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	s := samples[0]
	if s.VehicleID != "7001" || s.Ward != 1 || s.Deviation != 3.0 {
		t.Errorf("unexpected sample: %+v", s)
	}
}

func TestRunWritesStatus(t *testing.T) {
	st := store.NewMemory()
	tr := NewTracker(trackerTestConfig(), st, trackerTestWards())

	now := time.Date(2025, 11, 20, 14, 30, 0, 0, time.UTC)
	tr.Now = func() time.Time { return now }
	tr.Monthly = []history.MonthlyReport{
		{Year: 2025, Month: 11, PctOnTime: 75, PctEarly: 10, PctLate: 15, Timepoints: 100},
	}
	tr.RouteOTP = history.RouteOTPTable{}

	samples := []PositionSample{
		{VehicleID: "7001", RouteID: "C21", Ward: 1, Deviation: 3, Timestamp: now},
	}
	if err := tr.Run(samples, nil, 5); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var status RunStatus
	if err := st.ReadJSON(StatusKey, &status); err != nil {
		t.Fatalf("read status: %v", err)
	}
	if status.Status != "ok" || status.Date != "2025-11-20" {
		t.Errorf("unexpected status: %+v", status)
	}
	if status.BusPositionsFetched != 5 || status.WardPositionsMatched != 1 {
		t.Errorf("unexpected counts: %+v", status)
	}
	if status.RunID == "" {
		t.Error("run id should be set")
	}

	// both pipelines ran
	var summary WardSummary
	if err := st.ReadJSON("data/ward-summary-1d.json", &summary); err != nil {
		t.Errorf("live view missing: %v", err)
	}
	if summary.RunID != status.RunID {
		t.Errorf("live view run id %q != status run id %q", summary.RunID, status.RunID)
	}
	if err := st.ReadJSON("data/ward-summary-1m.json", &summary); err != nil {
		t.Errorf("historical view missing: %v", err)
	}
	if summary.Source != SourceReportSystemwide {
		t.Errorf("no stop-ward map seeded, expected systemwide fallback, got %q", summary.Source)
	}
}
