package warddelay

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/district-mobility/ward-delay-tracker/config"
	"github.com/district-mobility/ward-delay-tracker/history"
	"github.com/district-mobility/ward-delay-tracker/mapping"
	"github.com/district-mobility/ward-delay-tracker/store"
)

// otpCap keeps synthesized on-time percentages plausible after scaling.
const otpCap = 99.9

// fallbackBaseline stands in when no ward has any route-level performance
// data to average.
const fallbackBaseline = 75.0

// BuildHistoricalViews synthesizes per-ward summaries for the report windows
// by blending the system-wide monthly report with route-level performance
// mapped onto wards. Without a stop-ward map every ward gets the plain
// system-wide average.
//
// Delay magnitudes are unknowable from percentage reports, so avg_delay and
// median_delay stay 0.0 in every synthesized view.
func BuildHistoricalViews(cfg config.AppConfig, st store.Store, rows []history.MonthlyReport, routeOTP history.RouteOTPTable, now time.Time, runID string) error {
	generatedAt := now.UTC().Format(time.RFC3339)

	var sw mapping.StopWardMap
	if err := st.ReadJSON(mapping.StopWardMapKey, &sw); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("read stop-ward map: %w", err)
		}
		log.Printf("historical: no stop-ward map, falling back to system-wide averages")
		return buildHistoricalFallback(cfg, st, rows, generatedAt, runID)
	}

	var meta mapping.RouteMetadata
	if err := st.ReadJSON(mapping.RouteMetadataKey, &meta); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("read route metadata: %w", err)
	}

	// Invert the stop map into ward -> routes with known performance.
	type routeOTPPair struct {
		route string
		otp   float64
	}
	wardRoutes := map[int][]routeOTPPair{}
	routeIDs := make([]string, 0)
	routeWards := mapping.RouteWards(&sw)
	for route := range routeWards {
		routeIDs = append(routeIDs, route)
	}
	sort.Strings(routeIDs)
	for _, route := range routeIDs {
		otp, ok := routeOTP.Lookup(route)
		if !ok {
			continue
		}
		for _, w := range routeWards[route] {
			wardRoutes[w] = append(wardRoutes[w], routeOTPPair{route: route, otp: otp})
		}
	}

	// Each ward's raw estimate is the unweighted mean over its routes; the
	// baseline is the mean across ward estimates. Factors express each ward's
	// performance relative to the system.
	wardIDs := cfg.Wards.IDs()
	rawEstimate := map[int]float64{}
	for _, w := range wardIDs {
		routes := wardRoutes[w]
		if len(routes) == 0 {
			continue
		}
		sum := 0.0
		for _, r := range routes {
			sum += r.otp
		}
		rawEstimate[w] = sum / float64(len(routes))
	}
	baseline := fallbackBaseline
	if len(rawEstimate) > 0 {
		sum := 0.0
		for _, raw := range rawEstimate {
			sum += raw
		}
		baseline = sum / float64(len(rawEstimate))
	}
	factor := map[int]float64{}
	for w, raw := range rawEstimate {
		if baseline > 0 {
			factor[w] = raw / baseline
		} else {
			factor[w] = 1.0
		}
	}

	for _, window := range cfg.Periods.Report {
		avg, ok := history.Average(history.LastMonths(rows, window.Months))
		if !ok {
			continue
		}

		summary := WardSummary{
			Period:      window.Key,
			GeneratedAt: generatedAt,
			RunID:       runID,
			DataPoints:  avg.Timepoints,
			DaysCovered: avg.MonthsCovered * 30,
			Source:      SourceReport,
			Wards:       map[string]WardStats{},
		}
		perWardSamples := avg.Timepoints / len(wardIDs)

		for _, w := range wardIDs {
			var stats StatsSummary
			if f, ok := factor[w]; ok {
				otp := avg.PctOnTime * f
				if otp > otpCap {
					otp = otpCap
				}
				lateShare, earlyShare := 0.5, 0.5
				if residual := avg.PctLate + avg.PctEarly; residual > 0 {
					lateShare = avg.PctLate / residual
					earlyShare = avg.PctEarly / residual
				}
				remaining := 100 - otp
				stats = StatsSummary{
					PctOnTime:   round1(otp),
					PctLate:     round1(remaining * lateShare),
					PctEarly:    round1(remaining * earlyShare),
					SampleCount: perWardSamples,
				}
			} else {
				stats = StatsSummary{
					PctOnTime:   avg.PctOnTime,
					PctLate:     avg.PctLate,
					PctEarly:    avg.PctEarly,
					SampleCount: perWardSamples,
				}
			}
			summary.Wards[strconv.Itoa(w)] = WardStats{StatsSummary: stats}
		}
		if err := st.WriteJSON(wardSummaryKey(window.Key), summary); err != nil {
			return fmt.Errorf("write ward summary %s: %w", window.Key, err)
		}

		// Per-ward route breakdowns: each route's base performance scaled to
		// the window, worst on-time percentage first.
		periodScale := 1.0
		if baseline > 0 {
			periodScale = avg.PctOnTime / baseline
		}
		for _, w := range wardIDs {
			entries := make([]RouteEntry, 0, len(wardRoutes[w]))
			for _, r := range wardRoutes[w] {
				scaled := r.otp * periodScale
				if scaled > otpCap {
					scaled = otpCap
				}
				name := r.route
				if info, ok := meta.Routes[r.route]; ok && info.Name != "" {
					name = info.Name
				}
				entries = append(entries, RouteEntry{
					RouteID:      r.route,
					RouteName:    name,
					StatsSummary: StatsSummary{PctOnTime: round1(scaled)},
				})
			}
			sort.Slice(entries, func(i, j int) bool {
				if entries[i].PctOnTime != entries[j].PctOnTime {
					return entries[i].PctOnTime < entries[j].PctOnTime
				}
				return entries[i].RouteID < entries[j].RouteID
			})
			wr := WardRoutes{Ward: w, Period: window.Key, GeneratedAt: generatedAt, Routes: entries}
			if err := st.WriteJSON(wardRoutesKey(w, window.Key), wr); err != nil {
				return fmt.Errorf("write ward %d routes: %w", w, err)
			}
		}
		log.Printf("historical: wrote %s views: system avg %.1f%%, baseline %.1f%%",
			window.Key, avg.PctOnTime, baseline)
	}
	return nil
}

// buildHistoricalFallback writes system-wide averages to every ward when no
// stop-ward map exists yet.
func buildHistoricalFallback(cfg config.AppConfig, st store.Store, rows []history.MonthlyReport, generatedAt, runID string) error {
	for _, window := range cfg.Periods.Report {
		avg, ok := history.Average(history.LastMonths(rows, window.Months))
		if !ok {
			continue
		}
		summary := WardSummary{
			Period:      window.Key,
			GeneratedAt: generatedAt,
			RunID:       runID,
			DataPoints:  avg.Timepoints,
			DaysCovered: avg.MonthsCovered * 30,
			Source:      SourceReportSystemwide,
			Wards:       map[string]WardStats{},
		}
		for _, w := range cfg.Wards.IDs() {
			summary.Wards[strconv.Itoa(w)] = WardStats{StatsSummary: StatsSummary{
				PctOnTime:   avg.PctOnTime,
				PctLate:     avg.PctLate,
				PctEarly:    avg.PctEarly,
				SampleCount: avg.Timepoints,
			}}
		}
		if err := st.WriteJSON(wardSummaryKey(window.Key), summary); err != nil {
			return fmt.Errorf("write ward summary %s: %w", window.Key, err)
		}
		for _, w := range cfg.Wards.IDs() {
			wr := WardRoutes{Ward: w, Period: window.Key, GeneratedAt: generatedAt, Routes: []RouteEntry{}}
			if err := st.WriteJSON(wardRoutesKey(w, window.Key), wr); err != nil {
				return fmt.Errorf("write ward %d routes: %w", w, err)
			}
		}
		log.Printf("historical: wrote %s fallback view: %.1f%% on time", window.Key, avg.PctOnTime)
	}
	return nil
}
