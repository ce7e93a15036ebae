package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/wire"
)

const (
	collectionAccounts    = "accounts"
	collectionRenters     = "renters"
	collectionMemberships = "memberships"
)

// Store is a remote data source keeping one entity type in a collection.
// Documents are the wire models keyed by _id; writes are upserts.
type Store[E domain.Entity[E], M any] struct {
	col     *mongo.Collection
	name    string
	toDoc   func(E) M
	fromDoc func(M, time.Time) wire.Decoded[E]
	log     zerolog.Logger
}

func NewAccountStore(db *mongo.Database, log zerolog.Logger) *Store[domain.Account, wire.AccountModel] {
	return &Store[domain.Account, wire.AccountModel]{
		col:     db.Collection(collectionAccounts),
		name:    "account",
		toDoc:   wire.FromAccount,
		fromDoc: wire.ToAccount,
		log:     log,
	}
}

func NewRenterStore(db *mongo.Database, log zerolog.Logger) *Store[domain.Renter, wire.RenterModel] {
	return &Store[domain.Renter, wire.RenterModel]{
		col:     db.Collection(collectionRenters),
		name:    "renter",
		toDoc:   wire.FromRenter,
		fromDoc: wire.ToRenter,
		log:     log,
	}
}

func NewMembershipStore(db *mongo.Database, log zerolog.Logger) *Store[domain.Membership, wire.MembershipModel] {
	return &Store[domain.Membership, wire.MembershipModel]{
		col:     db.Collection(collectionMemberships),
		name:    "membership",
		toDoc:   wire.FromMembership,
		fromDoc: wire.ToMembership,
		log:     log,
	}
}

// GetByID retrieves a document by id. A missing document is reported as
// found=false with a nil error.
func (s *Store[E, M]) GetByID(ctx context.Context, id string) (E, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var zero E
	var doc M
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("find %s: %w", s.name, err)
	}

	decoded := s.fromDoc(doc, time.Now().UTC())
	decoded.Report(s.log, s.name)
	return decoded.Entity, true, nil
}

// Create inserts or replaces the document for entity.
func (s *Store[E, M]) Create(ctx context.Context, entity E) error {
	return s.upsert(ctx, "create", entity)
}

// Update inserts or replaces the document for entity.
func (s *Store[E, M]) Update(ctx context.Context, entity E) error {
	return s.upsert(ctx, "update", entity)
}

// List returns every document in the collection.
func (s *Store[E, M]) List(ctx context.Context) ([]E, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	defer cur.Close(ctx)

	var out []E
	for cur.Next(ctx) {
		var doc M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("list %s: decode: %w", s.name, err)
		}
		decoded := s.fromDoc(doc, time.Now().UTC())
		decoded.Report(s.log, s.name)
		out = append(out, decoded.Entity)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return out, nil
}

func (s *Store[E, M]) upsert(ctx context.Context, op string, entity E) error {
	id := entity.EntityID()
	if id == "" {
		return domain.ErrMissingID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": id}, s.toDoc(entity), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, s.name, err)
	}
	return nil
}

// EnsureIndexes creates secondary indexes used by lookups outside _id.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := db.Collection(collectionAccounts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("accounts index: %w", err)
	}
	if _, err := db.Collection(collectionRenters).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	}); err != nil {
		return fmt.Errorf("renters index: %w", err)
	}
	if _, err := db.Collection(collectionMemberships).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "min_bookings", Value: 1}},
	}); err != nil {
		return fmt.Errorf("memberships index: %w", err)
	}
	if _, err := db.Collection(collectionStations).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	}); err != nil {
		return fmt.Errorf("stations index: %w", err)
	}
	return nil
}
