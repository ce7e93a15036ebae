package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
)

type GeofenceService struct {
	finder ports.StationFinder
	logger zerolog.Logger
}

func NewGeofenceService(finder ports.StationFinder, logger zerolog.Logger) *GeofenceService {
	return &GeofenceService{finder: finder, logger: logger}
}

// Query validates q and, when it is valid, returns the stations inside the
// fence ordered by distance. An invalid query never reaches the finder.
func (s *GeofenceService) Query(ctx context.Context, q ports.GeofenceQuery) (ports.GeofenceResult, error) {
	if err := validate.Struct(q); err != nil {
		return ports.GeofenceResult{Valid: false, Error: err.Error()}, nil
	}

	center := domain.Coordinates{Lat: q.Latitude, Lng: q.Longitude}
	stations, err := s.finder.FindWithin(ctx, center, q.Radius)
	if err != nil {
		return ports.GeofenceResult{}, fmt.Errorf("geofence query: %w", err)
	}

	hits := make([]ports.StationHit, 0, len(stations))
	for _, st := range stations {
		hits = append(hits, ports.StationHit{Station: st, DistanceMeters: center.DistanceTo(st.Location)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].DistanceMeters < hits[j].DistanceMeters })

	res := ports.GeofenceResult{Valid: true, Stations: hits}
	if nearest, ok := domain.FindNearest(center, stations); ok {
		res.Nearest = &ports.StationHit{Station: nearest, DistanceMeters: center.DistanceTo(nearest.Location)}
	}

	s.logger.Debug().Int("stations", len(hits)).Float64("radius", q.Radius).Msg("geofence query")
	return res, nil
}
