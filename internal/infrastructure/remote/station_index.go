package remote

import (
	"context"
	"slices"
	"sync"

	"github.com/voltride/rental-core/internal/core/domain"
)

// StationIndex answers radius queries over an in-memory station list.
type StationIndex struct {
	mu       sync.RWMutex
	stations []domain.Station
}

func NewStationIndex(stations ...domain.Station) *StationIndex {
	return &StationIndex{stations: slices.Clone(stations)}
}

// Put adds or replaces a station by id.
func (x *StationIndex) Put(s domain.Station) {
	x.mu.Lock()
	defer x.mu.Unlock()
	for i := range x.stations {
		if x.stations[i].ID == s.ID {
			x.stations[i] = s
			return
		}
	}
	x.stations = append(x.stations, s)
}

func (x *StationIndex) FindWithin(ctx context.Context, center domain.Coordinates, radius float64) ([]domain.Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	var out []domain.Station
	for _, s := range x.stations {
		if center.DistanceTo(s.Location) <= radius {
			out = append(out, s)
		}
	}
	return out, nil
}
