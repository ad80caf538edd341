package warddelay

import (
	"errors"
	"testing"
	"time"

	"github.com/district-mobility/ward-delay-tracker/config"
	"github.com/district-mobility/ward-delay-tracker/mapping"
	"github.com/district-mobility/ward-delay-tracker/store"
)

func liveTestConfig() config.AppConfig {
	return config.AppConfig{
		Wards:  config.WardsConfig{MinID: 1, MaxID: 3},
		OnTime: config.OnTimeBand{Min: -2, Max: 5},
		Periods: config.PeriodsConfig{
			Live: []config.LiveWindow{{Key: "1d", Days: 1}},
		},
	}
}

func liveTestSamples(now time.Time) []PositionSample {
	mk := func(route string, ward int, dev float64, ts time.Time) PositionSample {
		return PositionSample{RouteID: route, Ward: ward, Deviation: dev, Timestamp: ts}
	}
	return []PositionSample{
		mk("C21", 1, 6, now),
		mk("C21", 1, -1, now),
		mk("C21", 1, 0, time.Time{}), // unparsed timestamp, assumed current
		mk("D80", 1, 10, now),
		mk("D80", 1, 8, now),
		mk("D80", 1, 12, now),
		mk("A1", 2, 0, now),
		mk("A1", 2, -3, now),
	}
}

func TestBuildLiveViews(t *testing.T) {
	st := store.NewMemory()
	cfg := liveTestConfig()
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	routeMeta := map[string]mapping.RouteInfo{
		"C21": {Name: "C21 - Crosstown"},
	}

	if err := BuildLiveViews(cfg, st, routeMeta, liveTestSamples(now), now, "run-1"); err != nil {
		t.Fatalf("BuildLiveViews: %v", err)
	}

	var summary WardSummary
	if err := st.ReadJSON("data/ward-summary-1d.json", &summary); err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if summary.Source != SourceLive || summary.DataPoints != 8 || summary.DaysCovered != 1 {
		t.Errorf("unexpected summary header: %+v", summary)
	}
	if summary.RunID != "run-1" {
		t.Errorf("run id = %q", summary.RunID)
	}

	w1 := summary.Wards["1"]
	if w1.AvgDelay != 5.8 || w1.MedianDelay != 7.0 || w1.SampleCount != 6 {
		t.Errorf("ward 1 stats: %+v", w1)
	}
	if w1.PctOnTime != 33.3 || w1.PctLate != 66.7 || w1.PctEarly != 0.0 {
		t.Errorf("ward 1 percentages: %+v", w1)
	}
	if w1.BestRoute != "C21" || w1.WorstRoute != "D80" {
		t.Errorf("ward 1 best/worst = %q/%q", w1.BestRoute, w1.WorstRoute)
	}

	// A1 has only two samples: enough for stats, too few for best/worst
	w2 := summary.Wards["2"]
	if w2.AvgDelay != -1.5 || w2.SampleCount != 2 {
		t.Errorf("ward 2 stats: %+v", w2)
	}
	if w2.BestRoute != "" || w2.WorstRoute != "" {
		t.Errorf("ward 2 should have no best/worst: %+v", w2)
	}

	if _, ok := summary.Wards["3"]; ok {
		t.Error("ward without samples should be absent from the summary")
	}

	var wr WardRoutes
	if err := st.ReadJSON("data/ward-1-routes-1d.json", &wr); err != nil {
		t.Fatalf("read ward 1 routes: %v", err)
	}
	if len(wr.Routes) != 2 || wr.Routes[0].RouteID != "D80" || wr.Routes[1].RouteID != "C21" {
		t.Errorf("ward 1 routes should be worst first: %+v", wr.Routes)
	}
	if wr.Routes[1].RouteName != "C21 - Crosstown" {
		t.Errorf("route name not resolved: %+v", wr.Routes[1])
	}
	if wr.Routes[0].RouteName != "" {
		t.Errorf("unknown route should have no name: %+v", wr.Routes[0])
	}

	// route files exist even for empty wards
	if err := st.ReadJSON("data/ward-3-routes-1d.json", &wr); err != nil {
		t.Fatalf("read ward 3 routes: %v", err)
	}
	if len(wr.Routes) != 0 {
		t.Errorf("ward 3 should have no routes: %+v", wr.Routes)
	}
}

func TestBuildLiveViewsSkipsEmptyWindow(t *testing.T) {
	st := store.NewMemory()
	cfg := liveTestConfig()
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)

	stale := []PositionSample{
		{RouteID: "C21", Ward: 1, Deviation: 3, Timestamp: now.Add(-72 * time.Hour)},
	}
	if err := BuildLiveViews(cfg, st, nil, stale, now, "run-2"); err != nil {
		t.Fatalf("BuildLiveViews: %v", err)
	}

	var summary WardSummary
	err := st.ReadJSON("data/ward-summary-1d.json", &summary)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("empty window should write nothing, got %v", err)
	}
}

func TestBuildLiveViewsFiltersByWindow(t *testing.T) {
	st := store.NewMemory()
	cfg := liveTestConfig()
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)

	samples := []PositionSample{
		{RouteID: "C21", Ward: 1, Deviation: 3, Timestamp: now.Add(-1 * time.Hour)},
		{RouteID: "C21", Ward: 1, Deviation: 100, Timestamp: now.Add(-48 * time.Hour)},
	}
	if err := BuildLiveViews(cfg, st, nil, samples, now, "run-3"); err != nil {
		t.Fatalf("BuildLiveViews: %v", err)
	}

	var summary WardSummary
	if err := st.ReadJSON("data/ward-summary-1d.json", &summary); err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if summary.DataPoints != 1 {
		t.Errorf("old sample should be filtered out, got %d data points", summary.DataPoints)
	}
	if got := summary.Wards["1"].AvgDelay; got != 3.0 {
		t.Errorf("avg = %v, want 3.0", got)
	}
}
