// Command api serves the rental core over HTTP.
//
// @title                       Rental Core API
// @version                     1.0
// @description                 Accounts, renters, memberships, rental quotes and station lookup.
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voltride/rental-core/internal/api"
	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/repository"
	"github.com/voltride/rental-core/internal/core/service"
	"github.com/voltride/rental-core/internal/infrastructure/config"
	"github.com/voltride/rental-core/internal/infrastructure/queue"
	"github.com/voltride/rental-core/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// logger is not up yet
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "rental-core",
	})

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("api stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()

	b, err := openBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.close()

	// The sequencer outlives the signal context so requests still draining in
	// e.Shutdown can write. It stops when run returns, before backends close.
	seqCtx, stopSeq := context.WithCancel(context.Background())
	defer stopSeq()
	seq := queue.NewSequencer(cfg.Remote.WriteWorkers, logger.Component("sequencer"))
	seq.Start(seqCtx)

	repoLog := logger.Component("repository")
	accounts := repository.New("account", b.accountCache, b.accountRemote, repoLog, repository.WithSequencer(seq))
	renters := repository.New("renter", b.renterCache, b.renterRemote, repoLog, repository.WithSequencer(seq))
	memberships := repository.New("membership", b.membershipCache, b.membershipRemote, repoLog, repository.WithSequencer(seq))

	policy := domain.PricingPolicy{
		HourlyRate:         cfg.Pricing.HourlyRate,
		MonthlyDiscountPct: cfg.Pricing.MonthlyDiscountPct,
		YearlyDiscountPct:  cfg.Pricing.YearlyDiscountPct,
		MinRentalHours:     cfg.Pricing.MinRentalHours,
	}

	e := api.NewRouter(api.Dependencies{
		Accounts:    service.NewAccountService(accounts, logger.Component("accounts")),
		Renters:     service.NewRenterService(renters, logger.Component("renters")),
		Memberships: service.NewMembershipService(memberships, b.catalog, b.drafts, logger.Component("memberships")),
		Rentals:     service.NewRentalService(policy, memberships, logger.Component("rentals")),
		Geofence:    service.NewGeofenceService(b.stations, logger.Component("geofence")),
		Checks:      b.checks,
		JWTSecret:   cfg.JWTSecret,
		Logger:      logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("remote", cfg.Remote.Backend).
			Str("cache", cfg.Cache.Backend).
			Msg("api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
