package mapping

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/district-mobility/ward-delay-tracker/geo"
	"github.com/district-mobility/ward-delay-tracker/store"
)

// Source provides the stop and route reference data, typically the WMATA API.
type Source interface {
	Stops() ([]Stop, error)
	Routes() ([]Route, error)
}

// Mapper builds and refreshes the reference documents.
type Mapper struct {
	store       store.Store
	source      Source
	wards       *geo.WardIndex
	refreshDays int
	now         func() time.Time
}

func NewMapper(st store.Store, src Source, wards *geo.WardIndex, refreshDays int) *Mapper {
	return &Mapper{
		store:       st,
		source:      src,
		wards:       wards,
		refreshDays: refreshDays,
		now:         time.Now,
	}
}

// EnsureRouteMetadata rebuilds the reference documents when either is missing
// or older than the refresh interval, and returns the current route metadata
// and stop-ward map.
func (m *Mapper) EnsureRouteMetadata() (*RouteMetadata, *StopWardMap, error) {
	var meta RouteMetadata
	var sw StopWardMap
	metaErr := m.store.ReadJSON(RouteMetadataKey, &meta)
	swErr := m.store.ReadJSON(StopWardMapKey, &sw)
	if metaErr == nil && swErr == nil && m.fresh(meta.GeneratedAt) && m.fresh(sw.GeneratedAt) {
		return &meta, &sw, nil
	}
	if metaErr != nil && !errors.Is(metaErr, store.ErrNotFound) {
		return nil, nil, metaErr
	}
	if swErr != nil && !errors.Is(swErr, store.ErrNotFound) {
		return nil, nil, swErr
	}
	return m.Rebuild()
}

func (m *Mapper) fresh(generatedAt string) bool {
	t, err := time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return false
	}
	age := m.now().Sub(t)
	return age < time.Duration(m.refreshDays)*24*time.Hour
}

// Rebuild fetches stops and routes from the source, resolves each stop to a
// ward, and writes both reference documents.
func (m *Mapper) Rebuild() (*RouteMetadata, *StopWardMap, error) {
	stops, err := m.source.Stops()
	if err != nil {
		return nil, nil, fmt.Errorf("fetch stops: %w", err)
	}
	routes, err := m.source.Routes()
	if err != nil {
		return nil, nil, fmt.Errorf("fetch routes: %w", err)
	}

	generatedAt := m.now().UTC().Format(time.RFC3339)

	sw := &StopWardMap{
		GeneratedAt: generatedAt,
		StopCount:   len(stops),
		Mapping:     map[string]StopWardEntry{},
	}
	for _, stop := range stops {
		ward, ok := m.wards.WardOf(stop.Lat, stop.Lon)
		if !ok {
			continue
		}
		sw.Mapping[stop.StopID] = StopWardEntry{
			Ward:   ward,
			Name:   stop.Name,
			Routes: stop.Routes,
		}
	}
	sw.WardStopCount = len(sw.Mapping)

	routeWards := RouteWards(sw)
	meta := &RouteMetadata{
		GeneratedAt: generatedAt,
		Routes:      make(map[string]RouteInfo, len(routes)),
	}
	for _, r := range routes {
		wards := routeWards[r.RouteID]
		if wards == nil {
			wards = []int{}
		}
		meta.Routes[r.RouteID] = RouteInfo{
			Name:  r.Name,
			Line:  r.Line,
			Wards: wards,
		}
	}
	// Routes seen at stops but absent from the route list still get an entry
	// so delay views can name them.
	extra := make([]string, 0)
	for route := range routeWards {
		if _, ok := meta.Routes[route]; !ok {
			extra = append(extra, route)
		}
	}
	sort.Strings(extra)
	for _, route := range extra {
		meta.Routes[route] = RouteInfo{Name: route, Wards: routeWards[route]}
	}

	if err := m.store.WriteJSON(StopWardMapKey, sw); err != nil {
		return nil, nil, fmt.Errorf("write stop-ward map: %w", err)
	}
	if err := m.store.WriteJSON(RouteMetadataKey, meta); err != nil {
		return nil, nil, fmt.Errorf("write route metadata: %w", err)
	}
	log.Printf("mapping: rebuilt reference data: %d stops (%d in wards), %d routes",
		sw.StopCount, sw.WardStopCount, len(meta.Routes))
	return meta, sw, nil
}
