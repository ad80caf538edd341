package wmata

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(url string) *Client {
	c := NewClient("test-key")
	c.BaseURL = url
	c.backoff = 0
	return c
}

func TestBusPositions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Bus.svc/json/jBusPositions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("api_key") != "test-key" {
			t.Errorf("missing api_key header")
		}
		w.Write([]byte(`{"BusPositions":[
			{"VehicleID":"7001","RouteID":"C21","Deviation":3.5,"Lat":38.9,"Lon":-77.02,"DateTime":"2025-11-20T14:03:22","TripID":"t1"},
			{"VehicleID":"7002","RouteID":"D80","Deviation":null,"Lat":38.8,"Lon":-77.01,"DateTime":"2025-11-20T14:03:25","TripID":"t2"}
		]}`))
	}))
	defer ts.Close()

	positions, err := testClient(ts.URL).BusPositions()
	if err != nil {
		t.Fatalf("BusPositions: %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(positions))
	}
	if positions[0].Deviation == nil || *positions[0].Deviation != 3.5 {
		t.Errorf("unexpected deviation: %+v", positions[0].Deviation)
	}
	if positions[1].Deviation != nil {
		t.Errorf("null deviation should stay nil")
	}
	if positions[0].Time().IsZero() {
		t.Errorf("DateTime %q did not parse", positions[0].DateTime)
	}
}

func TestGetRetriesOnServerError(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"Routes":[{"RouteID":"C21","Name":"C21 - Variant","LineDescription":"C2 Line"}]}`))
	}))
	defer ts.Close()

	routes, err := testClient(ts.URL).Routes()
	if err != nil {
		t.Fatalf("Routes after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if len(routes) != 1 || routes[0].RouteID != "C21" {
		t.Errorf("unexpected routes: %+v", routes)
	}
}

func TestGetGivesUpAfterMaxAttempts(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	if _, err := testClient(ts.URL).Stops(); err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if attempts != maxAttempts {
		t.Errorf("expected %d attempts, got %d", maxAttempts, attempts)
	}
}

func TestBusPositionTime(t *testing.T) {
	p := BusPosition{DateTime: "garbage"}
	if !p.Time().IsZero() {
		t.Error("unparseable DateTime should return zero time")
	}
	p = BusPosition{DateTime: "2025-11-20T14:03:22"}
	want := time.Date(2025, 11, 20, 14, 3, 22, 0, time.UTC)
	if !p.Time().Equal(want) {
		t.Errorf("Time() = %v, want %v", p.Time(), want)
	}
}
