package ports

import "context"

// LocalDataSource is the in-process cache sitting in front of a remote
// source. It has no expiry and no eviction.
type LocalDataSource[E any] interface {
	Cache(ctx context.Context, entity E) error
	// GetCached reports false when id is not cached.
	GetCached(ctx context.Context, id string) (E, bool, error)
	Clear(ctx context.Context, id string) error
}

// RemoteDataSource is the authoritative store for an entity type.
type RemoteDataSource[E any] interface {
	// GetByID reports false, nil when no record exists; not-found is not an error.
	GetByID(ctx context.Context, id string) (E, bool, error)
	// Create and Update both upsert by id.
	Create(ctx context.Context, entity E) error
	Update(ctx context.Context, entity E) error
}

// EntityRepository is the read/write API the services use. It coordinates a
// LocalDataSource and a RemoteDataSource.
type EntityRepository[E any] interface {
	GetByID(ctx context.Context, id string) (E, bool, error)
	Create(ctx context.Context, entity E) error
	Update(ctx context.Context, entity E) error
}
