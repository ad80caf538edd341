package feed

import (
	"testing"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

func vehicleEntity(id, tripID, routeID string, lat, lon float32, ts uint64) *gtfsrtpb.FeedEntity {
	var tsField *uint64
	if ts != 0 {
		tsField = proto.Uint64(ts)
	}
	return &gtfsrtpb.FeedEntity{
		Id: proto.String(id),
		Vehicle: &gtfsrtpb.VehiclePosition{
			Vehicle: &gtfsrtpb.VehicleDescriptor{Id: proto.String(id)},
			Trip: &gtfsrtpb.TripDescriptor{
				TripId:  proto.String(tripID),
				RouteId: proto.String(routeID),
			},
			Position: &gtfsrtpb.Position{
				Latitude:  proto.Float32(lat),
				Longitude: proto.Float32(lon),
			},
			Timestamp: tsField,
		},
	}
}

func tripUpdateEntity(tripID string, delay *int32, stuDelay *int32) *gtfsrtpb.FeedEntity {
	u := &gtfsrtpb.TripUpdate{
		Trip:  &gtfsrtpb.TripDescriptor{TripId: proto.String(tripID)},
		Delay: delay,
	}
	if stuDelay != nil {
		u.StopTimeUpdate = []*gtfsrtpb.TripUpdate_StopTimeUpdate{
			{
				StopId:  proto.String("s1"),
				Arrival: &gtfsrtpb.TripUpdate_StopTimeEvent{Delay: stuDelay},
			},
		}
	}
	return &gtfsrtpb.FeedEntity{Id: proto.String("u-" + tripID), TripUpdate: u}
}

func TestParseSamplesJoinsDelays(t *testing.T) {
	tu := &gtfsrtpb.FeedMessage{Entity: []*gtfsrtpb.FeedEntity{
		tripUpdateEntity("t1", proto.Int32(180), nil),
		tripUpdateEntity("t2", nil, proto.Int32(-90)),
	}}
	vp := &gtfsrtpb.FeedMessage{Entity: []*gtfsrtpb.FeedEntity{
		vehicleEntity("7001", "t1", "C21", 38.9, -77.02, 1763647402),
		vehicleEntity("7002", "t2", "D80", 38.8, -77.01, 1763647405),
		vehicleEntity("7003", "t3", "A12", 38.85, -77.0, 1763647410),
	}}

	samples := ParseSamples(tu, vp)
	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}

	byVehicle := map[string]Sample{}
	for _, s := range samples {
		byVehicle[s.VehicleID] = s
	}

	s1 := byVehicle["7001"]
	if s1.DeviationMin == nil || *s1.DeviationMin != 3.0 {
		t.Errorf("trip-level delay 180s should become 3 min, got %v", s1.DeviationMin)
	}
	if s1.RouteID != "C21" || s1.TripID != "t1" {
		t.Errorf("unexpected sample: %+v", s1)
	}
	if !s1.Timestamp.Equal(time.Unix(1763647402, 0).UTC()) {
		t.Errorf("unexpected timestamp: %v", s1.Timestamp)
	}

	s2 := byVehicle["7002"]
	if s2.DeviationMin == nil || *s2.DeviationMin != -1.5 {
		t.Errorf("stop-level delay -90s should become -1.5 min, got %v", s2.DeviationMin)
	}

	if byVehicle["7003"].DeviationMin != nil {
		t.Errorf("trip without an update should have nil deviation")
	}
}

func TestParseSamplesSkipsPositionless(t *testing.T) {
	vp := &gtfsrtpb.FeedMessage{Entity: []*gtfsrtpb.FeedEntity{
		{Id: proto.String("x"), Vehicle: &gtfsrtpb.VehiclePosition{
			Vehicle: &gtfsrtpb.VehicleDescriptor{Id: proto.String("7009")},
		}},
		vehicleEntity("7010", "t9", "C21", 38.9, -77.02, 0),
	}}

	samples := ParseSamples(nil, vp)
	if len(samples) != 1 || samples[0].VehicleID != "7010" {
		t.Fatalf("expected only the positioned vehicle, got %+v", samples)
	}
	if !samples[0].Timestamp.IsZero() {
		t.Errorf("missing timestamp should stay zero, got %v", samples[0].Timestamp)
	}
}

func TestParseSamplesNilFeeds(t *testing.T) {
	if got := ParseSamples(nil, nil); got != nil {
		t.Errorf("nil vehicle feed should yield nil, got %+v", got)
	}
}

func TestDelaysByTripPrefersTripLevel(t *testing.T) {
	tu := &gtfsrtpb.FeedMessage{Entity: []*gtfsrtpb.FeedEntity{
		{
			Id: proto.String("u1"),
			TripUpdate: &gtfsrtpb.TripUpdate{
				Trip:  &gtfsrtpb.TripDescriptor{TripId: proto.String("t1")},
				Delay: proto.Int32(60),
				StopTimeUpdate: []*gtfsrtpb.TripUpdate_StopTimeUpdate{
					{Arrival: &gtfsrtpb.TripUpdate_StopTimeEvent{Delay: proto.Int32(999)}},
				},
			},
		},
	}}
	delays := delaysByTrip(tu)
	if delays["t1"] != 60 {
		t.Errorf("trip-level delay should win, got %d", delays["t1"])
	}
}
