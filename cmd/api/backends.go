package main

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/voltride/rental-core/internal/api/handler"
	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
	"github.com/voltride/rental-core/internal/infrastructure/cache"
	"github.com/voltride/rental-core/internal/infrastructure/config"
	"github.com/voltride/rental-core/internal/infrastructure/db/mongo"
	"github.com/voltride/rental-core/internal/infrastructure/db/redis"
	"github.com/voltride/rental-core/internal/infrastructure/remote"
	"github.com/voltride/rental-core/internal/wire"
	"github.com/voltride/rental-core/pkg/logger"
)

// backends holds the local and remote data sources chosen by configuration.
type backends struct {
	accountCache    ports.LocalDataSource[domain.Account]
	renterCache     ports.LocalDataSource[domain.Renter]
	membershipCache ports.LocalDataSource[domain.Membership]

	accountRemote    ports.RemoteDataSource[domain.Account]
	renterRemote     ports.RemoteDataSource[domain.Renter]
	membershipRemote ports.RemoteDataSource[domain.Membership]

	catalog  ports.MembershipCatalog
	drafts   ports.MembershipDraftStore
	stations ports.StationFinder
	checks   []handler.Check

	closers []func(context.Context) error
}

func openBackends(ctx context.Context, cfg *config.Config) (*backends, error) {
	b := &backends{}
	if err := b.openRemote(ctx, cfg); err != nil {
		b.close()
		return nil, err
	}
	if err := b.openCache(ctx, cfg); err != nil {
		b.close()
		return nil, err
	}
	return b, nil
}

func (b *backends) openRemote(ctx context.Context, cfg *config.Config) error {
	switch cfg.Remote.Backend {
	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  "rental-core",
		})
		if err != nil {
			return fmt.Errorf("remote: %w", err)
		}
		b.closers = append(b.closers, func(ctx context.Context) error { return mongo.Disconnect(ctx, client) })

		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			return fmt.Errorf("remote: %w", err)
		}

		log := logger.Component("mongo")
		memberships := mongo.NewMembershipStore(db, log)
		b.accountRemote = mongo.NewAccountStore(db, log)
		b.renterRemote = mongo.NewRenterStore(db, log)
		b.membershipRemote = memberships
		b.catalog = memberships
		b.stations = mongo.NewStationStore(db)
		b.checks = append(b.checks, handler.Check{Name: "mongodb", Ping: mongoPing(client)})

	default:
		memberships := remote.NewMemoryStore[domain.Membership](cfg.Remote.Latency)
		b.accountRemote = remote.NewMemoryStore[domain.Account](cfg.Remote.Latency)
		b.renterRemote = remote.NewMemoryStore[domain.Renter](cfg.Remote.Latency)
		b.membershipRemote = memberships
		b.catalog = memberships
		b.stations = remote.NewStationIndex(demoStations...)
	}
	return nil
}

func (b *backends) openCache(ctx context.Context, cfg *config.Config) error {
	switch cfg.Cache.Backend {
	case config.BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })

		log := logger.Component("redis")
		b.accountCache = redis.NewCache(client, wire.AccountCodec, cfg.Cache.Prefix, log)
		b.renterCache = redis.NewCache(client, wire.RenterCodec, cfg.Cache.Prefix, log)
		b.membershipCache = redis.NewCache(client, wire.MembershipCodec, cfg.Cache.Prefix, log)
		b.drafts = cache.NewMembershipDrafts(redis.NewKV(client), cfg.Cache.DraftsKey)
		b.checks = append(b.checks, handler.Check{Name: "redis", Ping: redisPing(client)})

	default:
		b.accountCache = cache.NewMemory[domain.Account]()
		b.renterCache = cache.NewMemory[domain.Renter]()
		b.membershipCache = cache.NewMemory[domain.Membership]()
		b.drafts = cache.NewMembershipDrafts(cache.NewMemoryKV(), cfg.Cache.DraftsKey)
	}
	return nil
}

func (b *backends) close() {
	log := logger.Get()
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](context.Background()); err != nil {
			log.Warn().Err(err).Msg("backend close failed")
		}
	}
}

func mongoPing(client *mongodriver.Client) func(context.Context) error {
	return func(ctx context.Context) error { return client.Ping(ctx, nil) }
}

func redisPing(client *goredis.Client) func(context.Context) error {
	return func(ctx context.Context) error { return client.Ping(ctx).Err() }
}

// demoStations seeds the in-memory station index.
var demoStations = []domain.Station{
	{ID: "st_hoan_kiem", Name: "Hoan Kiem Lake", Location: domain.Coordinates{Lat: 21.0285, Lng: 105.8522}, AvailableBikes: 12},
	{ID: "st_old_quarter", Name: "Old Quarter", Location: domain.Coordinates{Lat: 21.0350, Lng: 105.8500}, AvailableBikes: 7},
	{ID: "st_west_lake", Name: "West Lake", Location: domain.Coordinates{Lat: 21.0580, Lng: 105.8190}, AvailableBikes: 9},
	{ID: "st_my_dinh", Name: "My Dinh", Location: domain.Coordinates{Lat: 21.0280, Lng: 105.7780}, AvailableBikes: 4},
}
