package ports

import (
	"context"

	"github.com/voltride/rental-core/internal/core/domain"
)

// GeofenceQuery asks for stations within Radius meters of a point.
type GeofenceQuery struct {
	Latitude  float64 `json:"latitude"  validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Radius    float64 `json:"radius"    validate:"gte=100,lte=10000"`
}

// StationHit is a station together with its distance from the query point.
type StationHit struct {
	Station        domain.Station
	DistanceMeters float64
}

// GeofenceResult is returned for every query. Invalid queries carry
// Valid=false and an Error message and never reach the station finder.
type GeofenceResult struct {
	Valid    bool
	Error    string
	Stations []StationHit
	Nearest  *StationHit
}

// StationFinder returns stations within radius meters of center.
type StationFinder interface {
	FindWithin(ctx context.Context, center domain.Coordinates, radius float64) ([]domain.Station, error)
}

type GeofenceService interface {
	Query(ctx context.Context, q GeofenceQuery) (GeofenceResult, error)
}
