package warddelay

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/district-mobility/ward-delay-tracker/config"
	"github.com/district-mobility/ward-delay-tracker/mapping"
	"github.com/district-mobility/ward-delay-tracker/store"
)

// minRouteSamples is the floor below which a route cannot be named a ward's
// best or worst route.
const minRouteSamples = 3

type wardRouteKey struct {
	ward  int
	route string
}

// BuildLiveViews computes ward summaries and per-ward route breakdowns from
// observed position samples, one set per configured live window. Windows with
// no samples are skipped so a stale feed cannot overwrite a good view with an
// empty one.
func BuildLiveViews(cfg config.AppConfig, st store.Store, routeMeta map[string]mapping.RouteInfo, samples []PositionSample, now time.Time, runID string) error {
	generatedAt := now.UTC().Format(time.RFC3339)
	band := Band{Min: cfg.OnTime.Min, Max: cfg.OnTime.Max}

	for _, window := range cfg.Periods.Live {
		cutoff := now.Add(-time.Duration(window.Days) * 24 * time.Hour)

		inWindow := make([]PositionSample, 0, len(samples))
		for _, s := range samples {
			// Samples without a parseable timestamp are assumed current.
			if s.Timestamp.IsZero() || !s.Timestamp.Before(cutoff) {
				inWindow = append(inWindow, s)
			}
		}
		if len(inWindow) == 0 {
			log.Printf("live: no samples in window %s, skipping", window.Key)
			continue
		}

		byWard := map[int][]float64{}
		byRoute := map[wardRouteKey][]float64{}
		for _, s := range inWindow {
			byWard[s.Ward] = append(byWard[s.Ward], s.Deviation)
			k := wardRouteKey{ward: s.Ward, route: s.RouteID}
			byRoute[k] = append(byRoute[k], s.Deviation)
		}

		summary := WardSummary{
			Period:      window.Key,
			GeneratedAt: generatedAt,
			RunID:       runID,
			DataPoints:  len(inWindow),
			DaysCovered: window.Days,
			Source:      SourceLive,
			Wards:       map[string]WardStats{},
		}

		for _, ward := range cfg.Wards.IDs() {
			routes := liveRouteEntries(ward, byRoute, routeMeta, band)

			wr := WardRoutes{
				Ward:        ward,
				Period:      window.Key,
				GeneratedAt: generatedAt,
				Routes:      routes,
			}
			if err := st.WriteJSON(wardRoutesKey(ward, window.Key), wr); err != nil {
				return fmt.Errorf("write ward %d routes: %w", ward, err)
			}

			stats, ok := ComputeStats(byWard[ward], band)
			if !ok {
				continue
			}
			ws := WardStats{StatsSummary: stats}
			ws.BestRoute, ws.WorstRoute = bestWorstRoutes(routes)
			summary.Wards[strconv.Itoa(ward)] = ws
		}

		if err := st.WriteJSON(wardSummaryKey(window.Key), summary); err != nil {
			return fmt.Errorf("write ward summary %s: %w", window.Key, err)
		}
		log.Printf("live: wrote %s views: %d samples across %d wards",
			window.Key, len(inWindow), len(summary.Wards))
	}
	return nil
}

// liveRouteEntries builds a ward's route breakdown, worst average delay first.
func liveRouteEntries(ward int, byRoute map[wardRouteKey][]float64, routeMeta map[string]mapping.RouteInfo, band Band) []RouteEntry {
	entries := make([]RouteEntry, 0)
	for k, devs := range byRoute {
		if k.ward != ward {
			continue
		}
		stats, ok := ComputeStats(devs, band)
		if !ok {
			continue
		}
		e := RouteEntry{RouteID: k.route, StatsSummary: stats}
		if info, ok := routeMeta[k.route]; ok {
			e.RouteName = info.Name
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AvgDelay != entries[j].AvgDelay {
			return entries[i].AvgDelay > entries[j].AvgDelay
		}
		return entries[i].RouteID < entries[j].RouteID
	})
	return entries
}

// bestWorstRoutes picks the routes with the lowest and highest average delay
// among those with enough samples to be meaningful.
func bestWorstRoutes(entries []RouteEntry) (best, worst string) {
	var bestDelay, worstDelay float64
	for _, e := range entries {
		if e.SampleCount < minRouteSamples {
			continue
		}
		if best == "" || e.AvgDelay < bestDelay {
			best, bestDelay = e.RouteID, e.AvgDelay
		}
		if worst == "" || e.AvgDelay > worstDelay {
			worst, worstDelay = e.RouteID, e.AvgDelay
		}
	}
	return best, worst
}
