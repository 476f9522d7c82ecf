package energyservice

//go:generate mockgen -source=energyservice.go -destination=mock_energyservice.go -package=energyservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/tapearn/internal/cache"
	"github.com/GlebRadaev/tapearn/internal/config"
	"github.com/GlebRadaev/tapearn/internal/domain"
	"github.com/GlebRadaev/tapearn/internal/price"
	"github.com/GlebRadaev/tapearn/pkg/units"
)

const (
	ParamsKey         = "energy:calc"
	ParamsTTL         = 3 * time.Hour
	SnapshotKeyPrefix = "user:energy:"
	SnapshotTTL       = 5 * 24 * time.Hour
)

var (
	ErrCacheReadFailed  = errors.New("energy cache read failed")
	ErrCacheWriteFailed = errors.New("energy cache write failed")
	ErrInvalidSnapshot  = errors.New("energy snapshot must not be negative")
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

type PriceSource interface {
	CurrentPrice(ctx context.Context) (float64, error)
}

type Service struct {
	store  Store
	prices PriceSource
	limits config.Limits
	now    func() time.Time
	group  singleflight.Group
}

func New(store Store, prices PriceSource, limits config.Limits) *Service {
	return &Service{
		store:  store,
		prices: prices,
		limits: limits,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func SnapshotKey(userID int64) string {
	return SnapshotKeyPrefix + strconv.FormatInt(userID, 10)
}

// GetOrComputeParameters returns the cached regeneration parameters,
// recomputing them from the live price on a miss. Concurrent misses share one
// computation.
func (s *Service) GetOrComputeParameters(ctx context.Context) (*domain.EnergyParams, error) {
	raw, err := s.store.Get(ctx, ParamsKey)
	switch {
	case err == nil:
		var params domain.EnergyParams
		decodeErr := json.Unmarshal(raw, &params)
		if decodeErr == nil {
			return &params, nil
		}
		zap.L().Warn("cached energy parameters are corrupt, recomputing", zap.Error(decodeErr))
	case errors.Is(err, cache.ErrCacheMiss):
	default:
		return nil, fmt.Errorf("%w: %v", ErrCacheReadFailed, err)
	}

	// The shared computation outlives any single caller, so it runs on a
	// detached context bounded by the operation timeout.
	ch := s.group.DoChan(ParamsKey, func() (any, error) {
		computeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.limits.OperationTimeout)
		defer cancel()
		return s.computeParameters(computeCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		params := *res.Val.(*domain.EnergyParams)
		return &params, nil
	}
}

func (s *Service) computeParameters(ctx context.Context) (*domain.EnergyParams, error) {
	current, err := s.prices.CurrentPrice(ctx)
	if err != nil {
		zap.L().Error("can't fetch price for energy parameters", zap.Error(err))
		return nil, err
	}
	if current <= 0 {
		return nil, fmt.Errorf("%w: non-positive price %v", price.ErrPriceUnavailable, current)
	}

	params := ComputeParameters(current, s.limits)

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, ParamsKey, raw, ParamsTTL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheWriteFailed, err)
	}
	zap.L().Info("energy parameters recomputed",
		zap.Float64("price", params.CurrentPrice),
		zap.Int64("dailyLimit", params.DailyLimitTokens),
		zap.Float64("chargePerSecond", params.ChargePerSecond))
	return params, nil
}

// ComputeParameters derives regeneration parameters from a positive price.
// The stored charge is quantized down to a 0.05 step while the maximum energy
// uses the exact charge.
func ComputeParameters(currentPrice float64, limits config.Limits) *domain.EnergyParams {
	dailyLimit := units.DailyLimitTokens(limits.DailyUSDLimit, currentPrice)
	charge := float64(dailyLimit) / config.SecondsPerDay
	maxEnergy := float64(dailyLimit) * float64(limits.SecondsMaxRecharge) / config.SecondsPerDay

	return &domain.EnergyParams{
		CurrentPrice:          currentPrice,
		DailyLimitTokens:      dailyLimit,
		ChargePerSecond:       units.QuantizeCharge(charge),
		MaxEnergyPerPartition: maxEnergy,
		DischargePerClick:     maxEnergy / float64(limits.MaxClicksPerPartition),
	}
}

// SyncBalance records the client-reported balance and energy as of now.
func (s *Service) SyncBalance(ctx context.Context, userID, balance int64, value float64) (*domain.EnergySnapshot, error) {
	if balance < 0 || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, ErrInvalidSnapshot
	}

	snapshot := &domain.EnergySnapshot{
		Balance: balance,
		Value:   value,
		SyncAt:  s.now(),
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, SnapshotKey(userID), raw, SnapshotTTL); err != nil {
		zap.L().Error("can't sync energy balance", zap.Int64("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCacheWriteFailed, err)
	}
	return snapshot, nil
}

// GetCurrentEnergy projects the user's energy forward from the last sync.
// The projection is never written back.
func (s *Service) GetCurrentEnergy(ctx context.Context, userID int64) (*domain.EnergySnapshot, error) {
	params, err := s.GetOrComputeParameters(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	snapshot, err := s.loadSnapshot(ctx, SnapshotKey(userID))
	if errors.Is(err, cache.ErrCacheMiss) {
		return &domain.EnergySnapshot{
			Value:           params.MaxEnergyPerPartition,
			SyncAt:          now,
			ChargePerSecond: params.ChargePerSecond,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	elapsed := int64(now.Sub(snapshot.SyncAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	if limit := int64(s.limits.SecondsMaxRecharge); elapsed > limit {
		elapsed = limit
	}

	snapshot.SecondsRecharge = elapsed
	snapshot.ChargePerSecond = params.ChargePerSecond
	snapshot.Value = math.Min(snapshot.Value+params.ChargePerSecond*float64(elapsed), params.MaxEnergyPerPartition)
	return snapshot, nil
}

// ListSnapshots returns every cached snapshot keyed by user id. Keys that
// expire between the scan and the read are skipped.
func (s *Service) ListSnapshots(ctx context.Context) (map[int64]domain.EnergySnapshot, error) {
	keys, err := s.store.Scan(ctx, SnapshotKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheReadFailed, err)
	}

	snapshots := make(map[int64]domain.EnergySnapshot, len(keys))
	for _, key := range keys {
		userID, err := strconv.ParseInt(strings.TrimPrefix(key, SnapshotKeyPrefix), 10, 64)
		if err != nil {
			zap.L().Warn("skipping malformed energy key", zap.String("key", key))
			continue
		}
		snapshot, err := s.loadSnapshot(ctx, key)
		if errors.Is(err, cache.ErrCacheMiss) {
			continue
		}
		if err != nil {
			return nil, err
		}
		snapshots[userID] = *snapshot
	}
	return snapshots, nil
}

func (s *Service) loadSnapshot(ctx context.Context, key string) (*domain.EnergySnapshot, error) {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCacheReadFailed, err)
	}
	var snapshot domain.EnergySnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		zap.L().Error("can't decode energy snapshot", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCacheReadFailed, err)
	}
	return &snapshot, nil
}
