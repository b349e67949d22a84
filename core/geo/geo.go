package geo

import "math"

// EarthRadiusMeters is the sphere radius used by the haversine formula.
const EarthRadiusMeters = 6371000

// DistanceMeters returns the great-circle distance between two coordinates
// (decimal degrees) using the haversine formula. Inputs are assumed to be
// valid degree values.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	deltaPhi := radians(lat2 - lat1)
	deltaLambda := radians(lon2 - lon1)

	a := math.Pow(math.Sin(deltaPhi/2), 2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Pow(math.Sin(deltaLambda/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

type (
	// Fence is a virtual perimeter around a center point; points within
	// MaxDistanceMeters of the center (inclusive) are allowed.
	Fence struct {
		Lat               float64
		Lon               float64
		MaxDistanceMeters float64
	}

	// Result is the classification of a point against a Fence. A denied
	// result is a valid negative classification, not an error.
	Result struct {
		Allowed        bool
		DistanceMeters float64
	}
)

// Check classifies the given point against the fence.
func (f Fence) Check(lat, lon float64) Result {
	dist := DistanceMeters(lat, lon, f.Lat, f.Lon)
	return Result{
		Allowed:        dist <= f.MaxDistanceMeters,
		DistanceMeters: dist,
	}
}
