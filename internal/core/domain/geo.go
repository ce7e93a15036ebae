package domain

import "math"

const earthRadiusMeters = 6371000.0

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Station is a pick-up and charging point for bikes.
type Station struct {
	ID             string
	Name           string
	Location       Coordinates
	AvailableBikes int
}

// CalculateDistance returns the great-circle distance in meters between two
// points using the haversine formula.
func CalculateDistance(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceTo is CalculateDistance from c to other.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	return CalculateDistance(c.Lat, c.Lng, other.Lat, other.Lng)
}

// FindNearest returns the station closest to origin. It reports false when
// stations is empty.
func FindNearest(origin Coordinates, stations []Station) (Station, bool) {
	if len(stations) == 0 {
		return Station{}, false
	}
	best := stations[0]
	bestDist := origin.DistanceTo(best.Location)
	for _, s := range stations[1:] {
		if d := origin.DistanceTo(s.Location); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, true
}
