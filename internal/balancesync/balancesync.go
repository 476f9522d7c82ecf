// Package balancesync periodically copies cached energy balances into the
// users table.
package balancesync

//go:generate mockgen -source=balancesync.go -destination=mock_balancesync.go -package=balancesync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/tapearn/internal/domain"
)

const (
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"

	statisticsSampleSize = 10
)

const (
	StatusIdle                = "idle"
	StatusCompleted           = "completed"
	StatusCompletedWithErrors = "completed_with_errors"
	StatusCacheError          = "cache_error"
)

var ErrSyncInProgress = errors.New("balance sync already in progress")

type SnapshotSource interface {
	ListSnapshots(ctx context.Context) (map[int64]domain.EnergySnapshot, error)
}

type UserRepo interface {
	SetSyncedBalance(ctx context.Context, userID, balance int64, at time.Time) (bool, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Stats describes one sync run.
type Stats struct {
	StartedAt       time.Time `json:"start_time"`
	FinishedAt      time.Time `json:"end_time"`
	DurationSeconds float64   `json:"sync_duration_seconds"`
	Found           int       `json:"redis_keys_found"`
	Updated         int       `json:"updated_count"`
	NotFound        int       `json:"not_found_count"`
	Errors          int       `json:"error_count"`
	Status          string    `json:"status"`
	ErrorMessage    string    `json:"error_message,omitempty"`
}

// ScheduleInfo describes the periodic job. NextRun and PreviousRun are unset
// until the scheduler has been started.
type ScheduleInfo struct {
	Schedule    string     `json:"schedule"`
	Enabled     bool       `json:"enabled"`
	InProgress  bool       `json:"sync_in_progress"`
	NextRun     *time.Time `json:"next_run,omitempty"`
	PreviousRun *time.Time `json:"previous_run,omitempty"`
}

type HealthChecks struct {
	CacheConnection string `json:"redis_connection"`
	SnapshotCount   int    `json:"redis_keys_count"`
	SchedulerActive bool   `json:"scheduler_active"`
	LastSyncStatus  string `json:"last_sync_status"`
	ErrorMessage    string `json:"error_message,omitempty"`
}

// Health is reported even when a check fails.
type Health struct {
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Checks    HealthChecks `json:"checks"`
}

type BalanceStatistics struct {
	UsersWithBalance int     `json:"total_users_with_balance"`
	TotalBalance     int64   `json:"total_balance_amount"`
	AverageBalance   float64 `json:"average_balance"`
	Sample           []int64 `json:"balance_keys_sample"`
}

type Statistics struct {
	LastSync Stats             `json:"last_sync"`
	Balances BalanceStatistics `json:"balance_statistics"`
}

type Service struct {
	snapshots  SnapshotSource
	userRepo   UserRepo
	cache      Pinger
	workerPool WorkerPoolI
	schedule   string
	now        func() time.Time

	cronMu sync.RWMutex
	cron   *cron.Cron
	jobID  cron.EntryID

	running atomic.Bool
	mu      sync.RWMutex
	last    Stats
}

func New(snapshots SnapshotSource, userRepo UserRepo, cache Pinger, schedule string, workers int) *Service {
	return &Service{
		snapshots:  snapshots,
		userRepo:   userRepo,
		cache:      cache,
		workerPool: NewWorkerPool(workers),
		schedule:   schedule,
		now:        func() time.Time { return time.Now().UTC() },
		last:       Stats{Status: StatusIdle},
	}
}

// Start schedules runs until ctx is canceled or Close is called.
func (s *Service) Start(ctx context.Context) error {
	c := cron.New()
	id, err := c.AddFunc(s.schedule, func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			zap.L().Error("Scheduled balance sync failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid balance sync schedule %q: %w", s.schedule, err)
	}

	s.cronMu.Lock()
	s.cron = c
	s.jobID = id
	s.cronMu.Unlock()
	c.Start()
	zap.L().Info("Balance sync started", zap.String("schedule", s.schedule))

	go func() {
		<-ctx.Done()
		c.Stop()
		zap.L().Info("Context canceled, balance sync schedule stopped")
	}()
	return nil
}

// Close waits for a scheduled run in flight and releases the workers.
// RunNow must not be called afterwards.
func (s *Service) Close() {
	s.cronMu.RLock()
	c := s.cron
	s.cronMu.RUnlock()
	if c != nil {
		<-c.Stop().Done()
	}
	s.workerPool.Close()
}

func (s *Service) Schedule() ScheduleInfo {
	info := ScheduleInfo{
		Schedule:   s.schedule,
		InProgress: s.running.Load(),
	}

	s.cronMu.RLock()
	c, id := s.cron, s.jobID
	s.cronMu.RUnlock()
	if c == nil {
		return info
	}

	entry := c.Entry(id)
	info.Enabled = entry.Valid()
	if !entry.Next.IsZero() {
		next := entry.Next.UTC()
		info.NextRun = &next
	}
	if !entry.Prev.IsZero() {
		prev := entry.Prev.UTC()
		info.PreviousRun = &prev
	}
	return info
}

// Health pings the cache and counts the cached snapshots. A failed check
// marks the result unhealthy instead of returning an error.
func (s *Service) Health(ctx context.Context) Health {
	h := Health{
		Status:    HealthHealthy,
		Timestamp: s.now(),
		Checks: HealthChecks{
			CacheConnection: "ok",
			SchedulerActive: s.Schedule().Enabled,
			LastSyncStatus:  s.Stats().Status,
		},
	}

	fail := func(err error) Health {
		zap.L().Warn("Balance sync health check failed", zap.Error(err))
		h.Status = HealthUnhealthy
		h.Checks.CacheConnection = "failed"
		h.Checks.ErrorMessage = err.Error()
		return h
	}

	if err := s.cache.Ping(ctx); err != nil {
		return fail(err)
	}
	snapshots, err := s.snapshots.ListSnapshots(ctx)
	if err != nil {
		return fail(err)
	}
	h.Checks.SnapshotCount = len(snapshots)
	return h
}

// Statistics summarizes the cached balances next to the last run.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	snapshots, err := s.snapshots.ListSnapshots(ctx)
	if err != nil {
		zap.L().Error("Failed to list energy snapshots", zap.Error(err))
		return nil, err
	}

	ids := make([]int64, 0, len(snapshots))
	var total int64
	for userID, snapshot := range snapshots {
		ids = append(ids, userID)
		total += snapshot.Balance
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	balances := BalanceStatistics{
		UsersWithBalance: len(ids),
		TotalBalance:     total,
		Sample:           ids[:min(len(ids), statisticsSampleSize)],
	}
	if len(ids) > 0 {
		balances.AverageBalance = float64(total) / float64(len(ids))
	}
	return &Statistics{LastSync: s.Stats(), Balances: balances}, nil
}

// Stats returns the outcome of the last finished run.
func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// RunNow performs a sync synchronously. Only one run may be in flight.
func (s *Service) RunNow(ctx context.Context) (*Stats, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.running.Store(false)

	stats := &Stats{StartedAt: s.now()}
	defer func() {
		stats.FinishedAt = s.now()
		stats.DurationSeconds = stats.FinishedAt.Sub(stats.StartedAt).Seconds()
		s.mu.Lock()
		s.last = *stats
		s.mu.Unlock()
	}()

	snapshots, err := s.snapshots.ListSnapshots(ctx)
	if err != nil {
		zap.L().Error("Failed to list energy snapshots", zap.Error(err))
		stats.Status = StatusCacheError
		stats.ErrorMessage = err.Error()
		return stats, err
	}
	stats.Found = len(snapshots)

	var (
		updated, notFound, failed atomic.Int64
		wg                        sync.WaitGroup
		g                         errgroup.Group
	)
	for userID, snapshot := range snapshots {
		userID, snapshot := userID, snapshot

		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				found, err := s.userRepo.SetSyncedBalance(ctx, userID, snapshot.Balance, snapshot.SyncAt)
				switch {
				case err != nil:
					failed.Add(1)
					return fmt.Errorf("failed to sync balance for user %d: %w", userID, err)
				case !found:
					notFound.Add(1)
					zap.L().Warn("User from energy cache not found", zap.Int64("userID", userID))
				default:
					updated.Add(1)
				}
				return nil
			})
			if err != nil {
				wg.Done()
				failed.Add(1)
				return err
			}
			return nil
		})
	}

	gErr := g.Wait()
	wg.Wait()

	stats.Updated = int(updated.Load())
	stats.NotFound = int(notFound.Load())
	stats.Errors = int(failed.Load())
	stats.Status = StatusCompleted
	if stats.Errors > 0 {
		stats.Status = StatusCompletedWithErrors
	}
	if gErr != nil {
		stats.ErrorMessage = gErr.Error()
	}

	zap.L().Info("Balance sync finished",
		zap.String("status", stats.Status),
		zap.Int("found", stats.Found),
		zap.Int("updated", stats.Updated),
		zap.Int("notFound", stats.NotFound),
		zap.Int("errors", stats.Errors))
	return stats, nil
}
