package geofence

import "math"

const earthRadiusMeters = 6371000

// Zone is a circular geofence around a company location.
type Zone struct {
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// Result reports whether a point fell inside any zone, and which one.
type Result struct {
	Inside   bool
	ZoneName string
	// DistanceMeters is the distance to the matched zone center, or to the
	// nearest zone when no match was found. Kept for audit remarks.
	DistanceMeters float64
}

// HaversineDistance returns the great-circle distance between two coordinates
// in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Evaluate checks a reported coordinate against a company's zones. A point is
// valid when its distance to any zone center is within that zone's radius.
// A company with no zones configured rejects every point: an unconfigured
// company must not silently allow unrestricted attendance.
func Evaluate(lat, lon float64, zones []Zone) Result {
	nearest := math.Inf(1)
	for _, z := range zones {
		d := HaversineDistance(lat, lon, z.Latitude, z.Longitude)
		if d <= z.RadiusMeters {
			return Result{Inside: true, ZoneName: z.Name, DistanceMeters: d}
		}
		if d < nearest {
			nearest = d
		}
	}
	if len(zones) == 0 {
		return Result{}
	}
	return Result{DistanceMeters: nearest}
}
