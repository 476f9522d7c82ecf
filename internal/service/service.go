package service

import (
	"context"

	"github.com/GlebRadaev/tapearn/internal/balancesync"
	"github.com/GlebRadaev/tapearn/internal/config"
	"github.com/GlebRadaev/tapearn/internal/handlers/earning"
	"github.com/GlebRadaev/tapearn/internal/handlers/energy"
	"github.com/GlebRadaev/tapearn/internal/handlers/syncstatus"
	"github.com/GlebRadaev/tapearn/internal/handlers/user"
	"github.com/GlebRadaev/tapearn/internal/pg"
	"github.com/GlebRadaev/tapearn/internal/repo"
	"github.com/GlebRadaev/tapearn/internal/service/earningservice"
	"github.com/GlebRadaev/tapearn/internal/service/energyservice"
	"github.com/GlebRadaev/tapearn/internal/service/userservice"
)

// PriceSource is satisfied by the live price client.
type PriceSource interface {
	earningservice.PriceSource
	energyservice.PriceSource
}

// Cache stores energy state and answers health pings.
type Cache interface {
	energyservice.Store
	balancesync.Pinger
}

// Scheduler runs background jobs for the lifetime of the application.
type Scheduler interface {
	Start(ctx context.Context) error
	Close()
}

type Services struct {
	EarningService earning.Service
	EnergyService  energy.Service
	SyncService    syncstatus.Service
	UserService    user.Service
	Scheduler      Scheduler
}

func New(
	repo *repo.Repositories,
	txManager pg.TXManager,
	cache Cache,
	prices PriceSource,
	cfg *config.Config,
) *Services {
	energyService := energyservice.New(cache, prices, cfg.Limits)
	earningService := earningservice.New(repo.EarningRepo, repo.UserRepo, txManager, prices, cfg.Limits)
	syncService := balancesync.New(energyService, repo.UserRepo, cache, cfg.BalanceSyncSchedule, cfg.BalanceSyncWorkers)

	return &Services{
		EarningService: earningService,
		EnergyService:  energyService,
		SyncService:    syncService,
		UserService:    userservice.New(repo.UserRepo),
		Scheduler:      syncService,
	}
}
