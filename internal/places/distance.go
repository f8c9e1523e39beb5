package places

import "math"

// Mean Earth radius, meters and kilometers. Every distance computed for one
// ranking pass uses exactly one of the two.
const (
	earthRadiusM  = 6371000.0
	earthRadiusKm = 6371.0
)

// Coordinate is a WGS84 latitude/longitude pair
type Coordinate struct {
	Lat float64
	Lng float64
}

// Distance returns the great-circle distance between two coordinates in
// meters, using the haversine formula.
func Distance(a, b Coordinate) float64 {
	return haversine(a, b) * earthRadiusM
}

// DistanceKm returns the great-circle distance in kilometers
func DistanceKm(a, b Coordinate) float64 {
	return haversine(a, b) * earthRadiusKm
}

func haversine(a, b Coordinate) float64 {
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
