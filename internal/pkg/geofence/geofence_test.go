package geofence

import (
	"math"
	"testing"
)

// Office coordinates used across the cases (central Jakarta).
const (
	officeLat = -6.2088
	officeLon = 106.8456
)

func TestHaversineDistance(t *testing.T) {
	// Same point is zero.
	if d := HaversineDistance(officeLat, officeLon, officeLat, officeLon); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}

	// One degree of latitude is about 111 km.
	d := HaversineDistance(0, 0, 1, 0)
	if math.Abs(d-111195) > 200 {
		t.Errorf("1 degree latitude = %f m, want ~111195", d)
	}
}

func TestEvaluate_InsideZone(t *testing.T) {
	zones := []Zone{{Name: "HQ", Latitude: officeLat, Longitude: officeLon, RadiusMeters: 3000}}

	// ~150 m north of the office.
	res := Evaluate(officeLat+0.00135, officeLon, zones)
	if !res.Inside {
		t.Fatalf("expected inside, got %+v", res)
	}
	if res.ZoneName != "HQ" {
		t.Errorf("zone name = %q, want HQ", res.ZoneName)
	}
}

func TestEvaluate_OutsideZone(t *testing.T) {
	zones := []Zone{{Name: "HQ", Latitude: officeLat, Longitude: officeLon, RadiusMeters: 200}}

	// ~5 km away from a 200 m zone.
	res := Evaluate(officeLat+0.045, officeLon, zones)
	if res.Inside {
		t.Fatalf("expected outside, got %+v", res)
	}
	if res.DistanceMeters < 4000 {
		t.Errorf("distance = %f, want ~5000", res.DistanceMeters)
	}
}

func TestEvaluate_MatchesAnyZone(t *testing.T) {
	zones := []Zone{
		{Name: "HQ", Latitude: officeLat, Longitude: officeLon, RadiusMeters: 200},
		{Name: "Warehouse", Latitude: officeLat + 0.05, Longitude: officeLon, RadiusMeters: 500},
	}

	res := Evaluate(officeLat+0.0501, officeLon, zones)
	if !res.Inside || res.ZoneName != "Warehouse" {
		t.Errorf("expected Warehouse match, got %+v", res)
	}
}

func TestEvaluate_NoZonesFailsClosed(t *testing.T) {
	if res := Evaluate(officeLat, officeLon, nil); res.Inside {
		t.Errorf("expected rejection with no zones, got %+v", res)
	}
}

func TestEvaluate_EdgeOfRadius(t *testing.T) {
	zones := []Zone{{Name: "HQ", Latitude: 0, Longitude: 0, RadiusMeters: 1000}}

	d := HaversineDistance(0, 0, 0.0089, 0)
	res := Evaluate(0.0089, 0, zones)
	if d <= 1000 != res.Inside {
		t.Errorf("inside = %v inconsistent with distance %f", res.Inside, d)
	}
}
