// Package repository coordinates a local cache and a remote system of record
// for one entity type.
//
// Reads are cache-aside: the cache is consulted first and a hit never reaches
// the remote source. Writes are write-through and remote-first: the cache is
// only updated after the remote source accepted the write.
package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
	"github.com/voltride/rental-core/internal/pkg/metrics"
)

// Sequencer runs fn so that calls sharing a key never overlap and complete
// in submission order.
type Sequencer interface {
	Do(ctx context.Context, key string, fn func(context.Context) error) error
}

type direct struct{}

func (direct) Do(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

// Option configures a Repository.
type Option func(*config)

type config struct {
	seq Sequencer
}

// WithSequencer serialises writes and cache fills per entity id through s, so
// concurrent calls for the same id leave the cache holding the remote's final
// value.
func WithSequencer(s Sequencer) Option {
	return func(c *config) {
		if s != nil {
			c.seq = s
		}
	}
}

// Repository is the read/write API for entities of type E.
type Repository[E domain.Entity[E]] struct {
	name   string
	local  ports.LocalDataSource[E]
	remote ports.RemoteDataSource[E]
	seq    Sequencer
	log    zerolog.Logger
}

// New returns a Repository for the entity called name (used in logs and
// metric labels).
func New[E domain.Entity[E]](
	name string,
	local ports.LocalDataSource[E],
	remote ports.RemoteDataSource[E],
	log zerolog.Logger,
	opts ...Option,
) *Repository[E] {
	cfg := config{seq: direct{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Repository[E]{
		name:   name,
		local:  local,
		remote: remote,
		seq:    cfg.seq,
		log:    log.With().Str("entity", name).Logger(),
	}
}

// GetByID returns the entity with the given id. A cached copy is returned
// without consulting the remote source, so a record changed remotely after it
// was cached stays stale until Refresh is called. A remote miss is not cached.
//
// The fill after a miss runs in the same lane as writes to id, so a write that
// lands between the remote read and the cache fill cannot be overwritten by
// the older value.
func (r *Repository[E]) GetByID(ctx context.Context, id string) (E, bool, error) {
	var zero E

	cached, hit, err := r.lookup(ctx, id)
	if err != nil {
		return zero, false, err
	}
	if hit {
		return cached, true, nil
	}

	var (
		entity E
		found  bool
	)
	err = r.seq.Do(ctx, r.name+"/"+id, func(ctx context.Context) error {
		if c, ok, cerr := r.local.GetCached(ctx, id); cerr == nil && ok {
			entity, found = c, true
			return nil
		}
		var ferr error
		entity, found, ferr = r.fetch(ctx, id)
		if ferr != nil || !found {
			return ferr
		}
		r.store(ctx, entity)
		return nil
	})
	if err != nil || !found {
		return zero, false, err
	}
	return entity, true, nil
}

// Create writes entity to the remote source and then to the cache. A remote
// failure is returned unchanged and leaves the cache untouched.
func (r *Repository[E]) Create(ctx context.Context, entity E) error {
	return r.write(ctx, "create", entity, r.remote.Create)
}

// Update replaces the whole entity, remote first. The remote source decides
// upsert semantics.
func (r *Repository[E]) Update(ctx context.Context, entity E) error {
	return r.write(ctx, "update", entity, r.remote.Update)
}

// Refresh reloads id from the remote source and overwrites the cached copy.
// When the remote no longer has the record the cached copy is dropped.
func (r *Repository[E]) Refresh(ctx context.Context, id string) (E, bool, error) {
	var (
		zero   E
		entity E
		found  bool
	)
	err := r.seq.Do(ctx, r.name+"/"+id, func(ctx context.Context) error {
		var ferr error
		entity, found, ferr = r.fetch(ctx, id)
		if ferr != nil {
			return ferr
		}
		if !found {
			r.clear(ctx, id)
			return nil
		}
		r.store(ctx, entity)
		return nil
	})
	if err != nil || !found {
		return zero, false, err
	}
	return entity, true, nil
}

func (r *Repository[E]) write(ctx context.Context, op string, entity E, send func(context.Context, E) error) error {
	id := entity.EntityID()
	if id == "" {
		return domain.ErrMissingID
	}
	entity = entity.Clone()

	return r.seq.Do(ctx, r.name+"/"+id, func(ctx context.Context) error {
		start := time.Now()
		err := send(ctx, entity)
		r.observe(op, start, err)
		if err != nil {
			r.log.Error().Err(err).Str("id", id).Str("op", op).Msg("remote write failed")
			return err
		}
		r.store(ctx, entity)
		return nil
	})
}

func (r *Repository[E]) lookup(ctx context.Context, id string) (E, bool, error) {
	var zero E
	cached, hit, err := r.local.GetCached(ctx, id)
	switch {
	case err != nil && domain.IsCacheFault(err):
		metrics.CacheLookupsTotal.WithLabelValues(r.name, "fault").Inc()
		metrics.CacheFaultsTotal.WithLabelValues(r.name, "get").Inc()
		r.log.Warn().Err(err).Str("id", id).Msg("cache read failed, falling back to remote")
		return zero, false, nil
	case err != nil:
		return zero, false, err
	case hit:
		metrics.CacheLookupsTotal.WithLabelValues(r.name, "hit").Inc()
		return cached, true, nil
	default:
		metrics.CacheLookupsTotal.WithLabelValues(r.name, "miss").Inc()
		return zero, false, nil
	}
}

func (r *Repository[E]) fetch(ctx context.Context, id string) (E, bool, error) {
	start := time.Now()
	entity, found, err := r.remote.GetByID(ctx, id)
	r.observe("get", start, err)
	if err != nil {
		r.log.Error().Err(err).Str("id", id).Msg("remote read failed")
	}
	return entity, found, err
}

// store mirrors entity into the cache. The remote source already holds the
// value, so a cache fault is logged and the stale key is dropped rather than
// failing the call.
func (r *Repository[E]) store(ctx context.Context, entity E) {
	err := r.local.Cache(ctx, entity)
	if err == nil {
		return
	}
	metrics.CacheFaultsTotal.WithLabelValues(r.name, "cache").Inc()
	r.log.Warn().Err(err).Str("id", entity.EntityID()).Msg("cache write failed, dropping cached copy")
	r.clear(ctx, entity.EntityID())
}

func (r *Repository[E]) clear(ctx context.Context, id string) {
	if err := r.local.Clear(ctx, id); err != nil {
		metrics.CacheFaultsTotal.WithLabelValues(r.name, "clear").Inc()
		r.log.Warn().Err(err).Str("id", id).Msg("cache clear failed")
	}
}

func (r *Repository[E]) observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.RemoteCallsTotal.WithLabelValues(r.name, op, outcome).Inc()
	metrics.RemoteCallDuration.WithLabelValues(r.name, op).Observe(time.Since(start).Seconds())
}
