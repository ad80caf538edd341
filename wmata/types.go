package wmata

import "time"

// BusPosition is one vehicle from jBusPositions. Deviation is minutes off
// schedule, positive when late; nil when the feed has no schedule match for
// the trip.
type BusPosition struct {
	VehicleID string   `json:"VehicleID"`
	RouteID   string   `json:"RouteID"`
	Deviation *float64 `json:"Deviation"`
	Lat       float64  `json:"Lat"`
	Lon       float64  `json:"Lon"`
	DateTime  string   `json:"DateTime"`
	TripID    string   `json:"TripID"`
}

// Time parses the position's DateTime, which the API reports without a zone
// offset (Eastern local time). Returns the zero time when unparseable.
func (p BusPosition) Time() time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, p.DateTime); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Stop is one entry from jStops.
type Stop struct {
	StopID string   `json:"StopID"`
	Name   string   `json:"Name"`
	Lat    float64  `json:"Lat"`
	Lon    float64  `json:"Lon"`
	Routes []string `json:"Routes"`
}

// Route is one entry from jRoutes.
type Route struct {
	RouteID         string `json:"RouteID"`
	Name            string `json:"Name"`
	LineDescription string `json:"LineDescription"`
}

type busPositionsResponse struct {
	BusPositions []BusPosition `json:"BusPositions"`
}

type stopsResponse struct {
	Stops []Stop `json:"Stops"`
}

type routesResponse struct {
	Routes []Route `json:"Routes"`
}
