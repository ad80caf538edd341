package main

import (
	"flag"
	"log"
	"os"
	"time"

	warddelay "github.com/district-mobility/ward-delay-tracker"
	"github.com/district-mobility/ward-delay-tracker/config"
	"github.com/district-mobility/ward-delay-tracker/feed"
	"github.com/district-mobility/ward-delay-tracker/geo"
	"github.com/district-mobility/ward-delay-tracker/mapping"
	"github.com/district-mobility/ward-delay-tracker/store"
	"github.com/district-mobility/ward-delay-tracker/wmata"
)

func main() {
	source := flag.String("source", "wmata", "position source: wmata|gtfsrt")
	out := flag.String("out", "", "output directory (overrides config)")
	wardsPath := flag.String("wards", "", "ward boundary GeoJSON path (overrides config)")
	flag.Parse()

	warddelay.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config
	if *out != "" {
		cfg.Storage.Dir = *out
	}
	if *wardsPath != "" {
		cfg.Wards.GeoJSONPath = *wardsPath
	}

	st := store.NewFS(cfg.Storage.Dir)
	wards, err := geo.LoadWardIndexCached(cfg.Wards.GeoJSONPath)
	if err != nil {
		log.Fatalf("ward boundaries: %v", err)
	}

	client := wmata.NewClient(os.Getenv(cfg.WMATA.APIKeyEnv))
	if cfg.WMATA.BaseURL != "" {
		client.BaseURL = cfg.WMATA.BaseURL
	}
	client.SetTimeout(time.Duration(cfg.WMATA.TimeoutMS) * time.Millisecond)

	// Reference data refresh is best effort: a stale or missing route list
	// degrades names and historical breakdowns, not the live pipeline.
	mapper := mapping.NewMapper(st, wmataSource{client}, wards, cfg.Metadata.RefreshDays)
	var routeMeta map[string]mapping.RouteInfo
	if meta, _, err := mapper.EnsureRouteMetadata(); err != nil {
		log.Printf("warning: reference data unavailable: %v", err)
	} else {
		routeMeta = meta.Routes
	}

	raw, err := fetchPositions(*source, cfg, client)
	if err != nil {
		log.Fatalf("fetch positions: %v", err)
	}

	tracker := warddelay.NewTracker(cfg, st, wards)
	samples := tracker.Enrich(raw)
	if err := tracker.Run(samples, routeMeta, len(raw)); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func fetchPositions(source string, cfg config.AppConfig, client *wmata.Client) ([]warddelay.RawPosition, error) {
	switch source {
	case "wmata":
		positions, err := client.BusPositions()
		if err != nil {
			return nil, err
		}
		raw := make([]warddelay.RawPosition, 0, len(positions))
		for _, p := range positions {
			raw = append(raw, warddelay.RawPosition{
				VehicleID: p.VehicleID,
				RouteID:   p.RouteID,
				TripID:    p.TripID,
				Deviation: p.Deviation,
				Lat:       p.Lat,
				Lon:       p.Lon,
				Timestamp: p.Time(),
			})
		}
		return raw, nil
	case "gtfsrt":
		src := feed.NewSource(cfg.GTFSRT.TripUpdatesURL, cfg.GTFSRT.VehiclePositionsURL)
		samples, err := src.Fetch()
		if err != nil {
			return nil, err
		}
		raw := make([]warddelay.RawPosition, 0, len(samples))
		for _, s := range samples {
			raw = append(raw, warddelay.RawPosition{
				VehicleID: s.VehicleID,
				RouteID:   s.RouteID,
				TripID:    s.TripID,
				Deviation: s.DeviationMin,
				Lat:       s.Lat,
				Lon:       s.Lon,
				Timestamp: s.Timestamp,
			})
		}
		return raw, nil
	}
	log.Fatalf("unknown source %q", source)
	return nil, nil
}

// wmataSource adapts the WMATA client to the mapper's reference data source.
type wmataSource struct {
	client *wmata.Client
}

func (s wmataSource) Stops() ([]mapping.Stop, error) {
	stops, err := s.client.Stops()
	if err != nil {
		return nil, err
	}
	out := make([]mapping.Stop, 0, len(stops))
	for _, st := range stops {
		out = append(out, mapping.Stop{
			StopID: st.StopID,
			Name:   st.Name,
			Lat:    st.Lat,
			Lon:    st.Lon,
			Routes: st.Routes,
		})
	}
	return out, nil
}

func (s wmataSource) Routes() ([]mapping.Route, error) {
	routes, err := s.client.Routes()
	if err != nil {
		return nil, err
	}
	out := make([]mapping.Route, 0, len(routes))
	for _, r := range routes {
		out = append(out, mapping.Route{
			RouteID: r.RouteID,
			Name:    r.Name,
			Line:    r.LineDescription,
		})
	}
	return out, nil
}
