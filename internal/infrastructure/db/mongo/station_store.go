package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voltride/rental-core/internal/core/domain"
)

const (
	collectionStations = "stations"
	earthRadiusMeters  = 6371000.0
)

// StationStore answers geofence queries with a 2dsphere index.
type StationStore struct {
	col *mongo.Collection
}

func NewStationStore(db *mongo.Database) *StationStore {
	return &StationStore{col: db.Collection(collectionStations)}
}

type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"` // [lng, lat]
}

type stationDoc struct {
	ID             string   `bson:"_id"`
	Name           string   `bson:"name"`
	Location       geoPoint `bson:"location"`
	AvailableBikes int      `bson:"available_bikes"`
}

// Put inserts or replaces a station.
func (s *StationStore) Put(ctx context.Context, st domain.Station) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": st.ID}, toStationDoc(st), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put station: %w", err)
	}
	return nil
}

// FindWithin returns stations inside the circle of radius meters around center.
func (s *StationStore) FindWithin(ctx context.Context, center domain.Coordinates, radius float64) ([]domain.Station, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.col.Find(ctx, centerSphere(center, radius))
	if err != nil {
		return nil, fmt.Errorf("find stations: %w", err)
	}
	defer cur.Close(ctx)

	var docs []stationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}

	out := make([]domain.Station, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.station())
	}
	return out, nil
}

// centerSphere builds a $geoWithin filter; the radius is given in radians.
func centerSphere(center domain.Coordinates, radius float64) bson.M {
	return bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{center.Lng, center.Lat},
					radius / earthRadiusMeters,
				},
			},
		},
	}
}

func toStationDoc(st domain.Station) stationDoc {
	return stationDoc{
		ID:             st.ID,
		Name:           st.Name,
		Location:       geoPoint{Type: "Point", Coordinates: []float64{st.Location.Lng, st.Location.Lat}},
		AvailableBikes: st.AvailableBikes,
	}
}

func (d stationDoc) station() domain.Station {
	st := domain.Station{ID: d.ID, Name: d.Name, AvailableBikes: d.AvailableBikes}
	if len(d.Location.Coordinates) == 2 {
		st.Location = domain.Coordinates{Lng: d.Location.Coordinates[0], Lat: d.Location.Coordinates[1]}
	}
	return st
}
