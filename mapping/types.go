package mapping

import "sort"

// Storage keys for the two reference documents.
const (
	RouteMetadataKey = "data/route-metadata.json"
	StopWardMapKey   = "data/stop-ward-map.json"
)

// Stop is the subset of a transit stop the mapper needs.
type Stop struct {
	StopID string
	Name   string
	Lat    float64
	Lon    float64
	Routes []string
}

// Route is the subset of a transit route the mapper needs.
type Route struct {
	RouteID string
	Name    string
	Line    string
}

// RouteInfo is one route's persisted metadata.
type RouteInfo struct {
	Name  string `json:"name"`
	Line  string `json:"line,omitempty"`
	Wards []int  `json:"wards"`
}

// RouteMetadata is the persisted route reference document.
type RouteMetadata struct {
	GeneratedAt string               `json:"generated_at"`
	Routes      map[string]RouteInfo `json:"routes"`
}

// StopWardEntry is one stop's resolved ward.
type StopWardEntry struct {
	Ward   int      `json:"ward"`
	Name   string   `json:"name"`
	Routes []string `json:"routes"`
}

// StopWardMap is the persisted stop reference document. Mapping is keyed by
// stop id and holds only stops that resolved to a ward.
type StopWardMap struct {
	GeneratedAt   string                   `json:"generated_at"`
	StopCount     int                      `json:"stop_count"`
	WardStopCount int                      `json:"ward_stop_count"`
	Mapping       map[string]StopWardEntry `json:"mapping"`
}

// RouteWards inverts a stop-ward map into route id -> sorted distinct wards.
func RouteWards(sw *StopWardMap) map[string][]int {
	seen := map[string]map[int]struct{}{}
	for _, entry := range sw.Mapping {
		for _, route := range entry.Routes {
			if seen[route] == nil {
				seen[route] = map[int]struct{}{}
			}
			seen[route][entry.Ward] = struct{}{}
		}
	}
	out := make(map[string][]int, len(seen))
	for route, wards := range seen {
		ids := make([]int, 0, len(wards))
		for id := range wards {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		out[route] = ids
	}
	return out
}
