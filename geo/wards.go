package geo

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// WardIndex stores each ward's polygon rings in memory for fast lookups.
// The first ring of a ward is its exterior; the rest are holes.
type WardIndex struct {
	Rings map[int][]Ring
}

// NewWardIndex builds an index from an already-assembled ring set.
func NewWardIndex(rings map[int][]Ring) *WardIndex {
	if rings == nil {
		rings = map[int][]Ring{}
	}
	return &WardIndex{Rings: rings}
}

// LoadWardIndex reads a ward boundary GeoJSON file and builds the index.
func LoadWardIndex(path string) (*WardIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ward boundaries: %w", err)
	}
	return ParseWardGeoJSON(data)
}

type geoJSONFeature struct {
	Properties map[string]any `json:"properties"`
	Geometry   struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"geometry"`
}

type geoJSONCollection struct {
	Features []geoJSONFeature `json:"features"`
}

// ParseWardGeoJSON normalizes Polygon and MultiPolygon features into one
// ring list per ward. MultiPolygon sub-polygons are flattened together.
func ParseWardGeoJSON(data []byte) (*WardIndex, error) {
	var fc geoJSONCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse ward boundaries: %w", err)
	}

	rings := map[int][]Ring{}
	for _, f := range fc.Features {
		ward, ok := wardNumber(f.Properties["WARD"])
		if !ok {
			continue
		}
		switch f.Geometry.Type {
		case "Polygon":
			var coords [][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &coords); err != nil {
				return nil, fmt.Errorf("ward %d polygon: %w", ward, err)
			}
			rings[ward] = toRings(coords)
		case "MultiPolygon":
			var coords [][][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &coords); err != nil {
				return nil, fmt.Errorf("ward %d multipolygon: %w", ward, err)
			}
			var all []Ring
			for _, poly := range coords {
				all = append(all, toRings(poly)...)
			}
			rings[ward] = all
		}
	}
	return NewWardIndex(rings), nil
}

// wardNumber accepts the WARD property as either a JSON number or a string.
func wardNumber(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
	}
	return 0, false
}

func toRings(coords [][][]float64) []Ring {
	rings := make([]Ring, 0, len(coords))
	for _, rc := range coords {
		ring := make(Ring, 0, len(rc))
		for _, pt := range rc {
			if len(pt) < 2 {
				continue
			}
			ring = append(ring, [2]float64{pt[0], pt[1]})
		}
		rings = append(rings, ring)
	}
	return rings
}

// WardOf returns the ward containing the point, trying wards in ascending id
// order. Wards are assumed non-overlapping. False when the point is outside
// every ward.
func (ix *WardIndex) WardOf(lat, lon float64) (int, bool) {
	for _, ward := range ix.Wards() {
		if ringsContain(lon, lat, ix.Rings[ward]) {
			return ward, true
		}
	}
	return 0, false
}

// Wards returns the ward ids present in the boundary dataset, ascending.
func (ix *WardIndex) Wards() []int {
	ids := make([]int, 0, len(ix.Rings))
	for id := range ix.Rings {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
