package feed

import (
	"fmt"
	"io"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Sample is one vehicle joined across the two feeds. DeviationMin is minutes
// off schedule, positive when late; nil when no trip update carried a delay
// for the vehicle's trip.
type Sample struct {
	VehicleID    string
	RouteID      string
	TripID       string
	DeviationMin *float64
	Lat          float64
	Lon          float64
	Timestamp    time.Time
}

// Source fetches and joins the two GTFS-RT feeds.
type Source struct {
	tripUpdatesURL      string
	vehiclePositionsURL string
	httpClient          *http.Client
}

func NewSource(tripUpdatesURL, vehiclePositionsURL string) *Source {
	return &Source{
		tripUpdatesURL:      tripUpdatesURL,
		vehiclePositionsURL: vehiclePositionsURL,
		httpClient:          &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch pulls both feeds and returns one sample per vehicle entity that has a
// position. A failing trip updates fetch is not fatal: positions still flow,
// only without deviations.
func (s *Source) Fetch() ([]Sample, error) {
	var tu *gtfsrtpb.FeedMessage
	if s.tripUpdatesURL != "" {
		fm, err := s.fetchFeed(s.tripUpdatesURL)
		if err != nil {
			return nil, fmt.Errorf("trip updates: %w", err)
		}
		tu = fm
	}
	vp, err := s.fetchFeed(s.vehiclePositionsURL)
	if err != nil {
		return nil, fmt.Errorf("vehicle positions: %w", err)
	}
	return ParseSamples(tu, vp), nil
}

func (s *Source) fetchFeed(url string) (*gtfsrtpb.FeedMessage, error) {
	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, err
	}
	return &fm, nil
}

// ParseSamples joins trip updates and vehicle positions on trip id. Either
// message may be nil.
func ParseSamples(tu, vp *gtfsrtpb.FeedMessage) []Sample {
	delays := delaysByTrip(tu)

	if vp == nil {
		return nil
	}
	samples := make([]Sample, 0, len(vp.Entity))
	for _, e := range vp.Entity {
		v := e.Vehicle
		if v == nil || v.Position == nil || v.Position.Latitude == nil || v.Position.Longitude == nil {
			continue
		}
		var sm Sample
		sm.Lat = float64(*v.Position.Latitude)
		sm.Lon = float64(*v.Position.Longitude)
		if v.Vehicle != nil && v.Vehicle.Id != nil {
			sm.VehicleID = *v.Vehicle.Id
		}
		if v.Trip != nil {
			if v.Trip.TripId != nil {
				sm.TripID = *v.Trip.TripId
			}
			if v.Trip.RouteId != nil {
				sm.RouteID = *v.Trip.RouteId
			}
		}
		if v.Timestamp != nil {
			sm.Timestamp = time.Unix(int64(*v.Timestamp), 0).UTC()
		}
		if d, ok := delays[sm.TripID]; ok && sm.TripID != "" {
			minutes := float64(d) / 60
			sm.DeviationMin = &minutes
		}
		samples = append(samples, sm)
	}
	return samples
}

// delaysByTrip extracts one delay in seconds per trip: the trip-level delay
// when present, otherwise the first stop time update's arrival or departure
// delay.
func delaysByTrip(tu *gtfsrtpb.FeedMessage) map[string]int32 {
	delays := map[string]int32{}
	if tu == nil {
		return delays
	}
	for _, e := range tu.Entity {
		u := e.TripUpdate
		if u == nil || u.Trip == nil || u.Trip.TripId == nil {
			continue
		}
		tripID := *u.Trip.TripId
		if u.Delay != nil {
			delays[tripID] = *u.Delay
			continue
		}
		for _, stu := range u.StopTimeUpdate {
			if stu.Arrival != nil && stu.Arrival.Delay != nil {
				delays[tripID] = *stu.Arrival.Delay
				break
			}
			if stu.Departure != nil && stu.Departure.Delay != nil {
				delays[tripID] = *stu.Departure.Delay
				break
			}
		}
	}
	return delays
}
