package earningservice

//go:generate mockgen -source=earningservice.go -destination=mock_earningservice.go -package=earningservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tapearn/internal/config"
	"github.com/GlebRadaev/tapearn/internal/domain"
	"github.com/GlebRadaev/tapearn/internal/pg"
	"github.com/GlebRadaev/tapearn/pkg/partition"
	"github.com/GlebRadaev/tapearn/pkg/units"
)

// usdScale matches the NUMERIC(12,6) columns.
const usdScale = 6

var (
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrPersistence       = errors.New("earning store failure")
	ErrPartitionNotFound = errors.New("partition not found")
	ErrInvalidPartition  = errors.New("partition number out of range")
	ErrUserNotFound      = errors.New("user not found")

	errRejected = errors.New("click rejected")
)

type EarningRepo interface {
	LockOrCreateDaily(ctx context.Context, userID int64, date time.Time, maxPartitions int) (*domain.DailyEarning, error)
	GetDaily(ctx context.Context, userID int64, date time.Time) (*domain.DailyEarning, error)
	UpdateDaily(ctx context.Context, daily *domain.DailyEarning) error
	SetLastPartitionReset(ctx context.Context, dailyID int64, at time.Time) error
	LockOrCreatePartition(ctx context.Context, daily *domain.DailyEarning, number, maxClicks int, start time.Time) (*domain.EarningPartition, bool, error)
	GetPartition(ctx context.Context, userID int64, date time.Time, number int) (*domain.EarningPartition, error)
	LockPartition(ctx context.Context, userID int64, date time.Time, number int) (*domain.EarningPartition, error)
	ListPartitions(ctx context.Context, userID int64, date time.Time) ([]domain.EarningPartition, error)
	UpdatePartition(ctx context.Context, p *domain.EarningPartition) error
	InsertHistory(ctx context.Context, h *domain.EarningHistory) (*domain.EarningHistory, error)
	LastHistory(ctx context.Context, dailyID int64) (*domain.EarningHistory, error)
}

type UserRepo interface {
	Get(ctx context.Context, userID int64) (*domain.User, error)
	IncrementBalance(ctx context.Context, userID, tokens int64) (*domain.User, error)
}

type PriceSource interface {
	CurrentPrice(ctx context.Context) (float64, error)
}

type Service struct {
	earningRepo EarningRepo
	userRepo    UserRepo
	txManager   pg.TXManager
	prices      PriceSource
	limits      config.Limits
	grid        partition.Grid
	now         func() time.Time
	newID       func() uuid.UUID
}

func New(earningRepo EarningRepo, userRepo UserRepo, txManager pg.TXManager, prices PriceSource, limits config.Limits) *Service {
	return &Service{
		earningRepo: earningRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		prices:      prices,
		limits:      limits,
		grid:        partition.NewGrid(limits.SecondsPerPartition, limits.PartitionsCount),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.New,
	}
}

func persistence(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

func rejected(code domain.RejectCode, reason string, number int) *domain.ClickResult {
	return &domain.ClickResult{
		RejectCode:      code,
		Reason:          reason,
		EarnedUSD:       decimal.Zero,
		PartitionNumber: number,
	}
}

// Click prices the click at the live token price and processes it.
func (s *Service) Click(ctx context.Context, userID int64, energyConsumed int) (*domain.ClickResult, error) {
	priceCtx, cancel := context.WithTimeout(ctx, s.limits.OperationTimeout)
	current, err := s.prices.CurrentPrice(priceCtx)
	cancel()
	if err != nil {
		zap.L().Error("can't price click", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return s.ProcessClick(ctx, userID, energyConsumed, current)
}

// ProcessClick credits one click against the user's daily and partition
// budgets. Rejections are returned as results and leave no trace in the store.
func (s *Service) ProcessClick(ctx context.Context, userID int64, energyConsumed int, currentPrice float64) (*domain.ClickResult, error) {
	if currentPrice <= 0 || math.IsNaN(currentPrice) || math.IsInf(currentPrice, 0) {
		return nil, ErrInvalidPrice
	}

	ctx, cancel := context.WithTimeout(ctx, s.limits.OperationTimeout)
	defer cancel()

	now := s.now()
	today := partition.Day(now)
	number := s.grid.Number(now)

	var result *domain.ClickResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		known, err := s.userRepo.Get(ctx, userID)
		if err != nil {
			return persistence(err)
		}
		if known == nil {
			return ErrUserNotFound
		}

		daily, err := s.earningRepo.LockOrCreateDaily(ctx, userID, today, s.limits.PartitionsCount)
		if err != nil {
			return persistence(err)
		}
		if daily.DailyLimitReached {
			result = rejected(domain.RejectDailyLimitReached, "Daily earning limit reached", number)
			return errRejected
		}

		part, created, err := s.earningRepo.LockOrCreatePartition(ctx, daily, number, s.limits.MaxClicksPerPartition, s.grid.Start(number, today))
		if err != nil {
			return persistence(err)
		}
		if created {
			daily.PartitionsUsed++
		}
		if code, reason := s.partitionRejection(part); code != "" {
			result = rejected(code, reason, number)
			return errRejected
		}

		earned := units.ClickEarning(s.limits.BaseUSDPerClick, energyConsumed).Truncate(usdScale)
		earned = decimal.Min(earned,
			s.limits.PartitionUSDCap.Sub(part.EarnedUSD),
			s.limits.DailyUSDLimit.Sub(daily.TotalEarnedUSD))
		if !earned.IsPositive() {
			result = rejected(domain.RejectNoEarningsPossible, "No earnings possible due to limits", number)
			return errRejected
		}
		tokens, err := units.USDToTokens(earned, currentPrice)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPrice, err)
		}

		part.EarnedUSD = part.EarnedUSD.Add(earned)
		part.EarnedTokens += tokens
		part.ClicksCount++
		if part.ClicksCount >= part.MaxClicks || part.EarnedUSD.GreaterThanOrEqual(s.limits.PartitionUSDCap) {
			part.IsFull = true
			end := now
			part.EndTime = &end
		}
		if err := s.earningRepo.UpdatePartition(ctx, part); err != nil {
			return persistence(err)
		}

		daily.TotalEarnedUSD = daily.TotalEarnedUSD.Add(earned)
		daily.TotalEarnedTokens += tokens
		if daily.TotalEarnedUSD.GreaterThanOrEqual(s.limits.DailyUSDLimit) {
			daily.DailyLimitReached = true
		}
		if err := s.earningRepo.UpdateDaily(ctx, daily); err != nil {
			return persistence(err)
		}

		entry, err := s.earningRepo.InsertHistory(ctx, &domain.EarningHistory{
			ClickID:        s.newID(),
			UserID:         userID,
			DailyEarningID: daily.ID,
			PartitionID:    part.ID,
			ClickTimestamp: now,
			EarnedUSD:      earned,
			EarnedTokens:   tokens,
			PriceAtClick:   currentPrice,
			EnergyConsumed: energyConsumed,
		})
		if err != nil {
			return persistence(err)
		}

		user, err := s.userRepo.IncrementBalance(ctx, userID, tokens)
		if err != nil {
			return persistence(err)
		}
		if user == nil {
			return ErrUserNotFound
		}

		clickTime := now
		result = &domain.ClickResult{
			Accepted:        true,
			Reason:          "Earning processed successfully",
			EarnedUSD:       earned,
			EarnedTokens:    tokens,
			PartitionNumber: number,
			ClickID:         entry.ClickID,
			Status:          s.buildStatus(userID, today, daily, part, &clickTime, now),
		}
		return nil
	})

	if errors.Is(err, errRejected) {
		zap.L().Info("click rejected",
			zap.Int64("userID", userID),
			zap.Int("partition", number),
			zap.String("code", string(result.RejectCode)))
		return result, nil
	}
	if err != nil {
		zap.L().Error("failed to process click", zap.Int64("userID", userID), zap.Int("partition", number), zap.Error(err))
		return nil, err
	}

	zap.L().Info("click earned",
		zap.Int64("userID", userID),
		zap.Int("partition", number),
		zap.String("usd", result.EarnedUSD.String()),
		zap.Int64("tokens", result.EarnedTokens))
	return result, nil
}

// partitionRejection checks the click count first so a partition closed by
// its last click reports max clicks.
func (s *Service) partitionRejection(p *domain.EarningPartition) (domain.RejectCode, string) {
	switch {
	case p.ClicksCount >= p.MaxClicks:
		return domain.RejectPartitionMaxClicks, fmt.Sprintf("Partition %d reached max clicks", p.PartitionNumber)
	case p.EarnedUSD.GreaterThanOrEqual(s.limits.PartitionUSDCap):
		return domain.RejectPartitionLimitReached, fmt.Sprintf("Partition %d reached earning limit", p.PartitionNumber)
	case p.IsFull:
		return domain.RejectPartitionFull, fmt.Sprintf("Partition %d is full", p.PartitionNumber)
	}
	return "", ""
}

// GetStatus reports the user's earnings for date, today when date is nil.
func (s *Service) GetStatus(ctx context.Context, userID int64, date *time.Time) (*domain.DailyStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, s.limits.OperationTimeout)
	defer cancel()

	now := s.now()
	day := partition.Day(now)
	if date != nil {
		day = partition.Day(*date)
	}

	daily, err := s.earningRepo.GetDaily(ctx, userID, day)
	if err != nil {
		return nil, persistence(err)
	}
	if daily == nil {
		return s.buildStatus(userID, day, nil, nil, nil, now), nil
	}

	current, err := s.earningRepo.GetPartition(ctx, userID, day, s.grid.Number(now))
	if err != nil {
		return nil, persistence(err)
	}

	var lastClick *time.Time
	last, err := s.earningRepo.LastHistory(ctx, daily.ID)
	if err != nil {
		return nil, persistence(err)
	}
	if last != nil {
		lastClick = &last.ClickTimestamp
	}

	return s.buildStatus(userID, day, daily, current, lastClick, now), nil
}

func (s *Service) buildStatus(
	userID int64, day time.Time, daily *domain.DailyEarning, current *domain.EarningPartition, lastClick *time.Time, now time.Time,
) *domain.DailyStatus {
	number := s.grid.Number(now)
	status := &domain.DailyStatus{
		UserID:                    userID,
		EarningDate:               day,
		TotalEarnedUSD:            decimal.Zero,
		DailyLimitUSD:             s.limits.DailyUSDLimit,
		RemainingUSD:              s.limits.DailyUSDLimit,
		MaxPartitions:             s.limits.PartitionsCount,
		CurrentPartition:          number,
		CurrentPartitionEarnedUSD: decimal.Zero,
		CurrentPartitionMaxClicks: s.limits.MaxClicksPerPartition,
		LastClickTime:             lastClick,
	}
	if daily == nil {
		return status
	}

	status.TotalEarnedUSD = daily.TotalEarnedUSD
	status.TotalEarnedTokens = daily.TotalEarnedTokens
	status.RemainingUSD = decimal.Max(decimal.Zero, s.limits.DailyUSDLimit.Sub(daily.TotalEarnedUSD))
	status.PartitionsUsed = daily.PartitionsUsed
	status.MaxPartitions = daily.MaxPartitions
	status.DailyLimitReached = daily.DailyLimitReached
	if current != nil {
		status.CurrentPartitionEarnedUSD = current.EarnedUSD
		status.CurrentPartitionClicks = current.ClicksCount
		status.CurrentPartitionMaxClicks = current.MaxClicks
	}
	if day.Equal(partition.Day(now)) {
		if _, open := s.grid.UntilEnd(number, day, now); open {
			end := s.grid.End(number, day)
			status.NextPartitionResetTime = &end
		}
	}
	return status
}

// GetSummary extends the status with every partition of the day.
func (s *Service) GetSummary(ctx context.Context, userID int64, date *time.Time) (*domain.DailySummary, error) {
	status, err := s.GetStatus(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.limits.OperationTimeout)
	defer cancel()

	list, err := s.earningRepo.ListPartitions(ctx, userID, status.EarningDate)
	if err != nil {
		return nil, persistence(err)
	}

	now := s.now()
	isToday := status.EarningDate.Equal(partition.Day(now))
	summary := &domain.DailySummary{
		DailyStatus:             *status,
		Partitions:              make([]domain.PartitionStatus, 0, len(list)),
		AverageEarningsPerClick: decimal.Zero,
	}
	for _, p := range list {
		ps := domain.PartitionStatus{
			PartitionNumber: p.PartitionNumber,
			EarnedUSD:       p.EarnedUSD,
			EarnedTokens:    p.EarnedTokens,
			ClicksCount:     p.ClicksCount,
			MaxClicks:       p.MaxClicks,
			IsFull:          p.IsFull,
			StartTime:       p.StartTime,
			EndTime:         p.EndTime,
		}
		if isToday && p.PartitionNumber == status.CurrentPartition {
			if left, open := s.grid.UntilEnd(p.PartitionNumber, status.EarningDate, now); open {
				ps.TimeUntilReset = &left
			}
		}
		summary.TotalClicksToday += p.ClicksCount
		summary.Partitions = append(summary.Partitions, ps)
	}
	if summary.TotalClicksToday > 0 {
		summary.AverageEarningsPerClick = status.TotalEarnedUSD.
			Div(decimal.NewFromInt(int64(summary.TotalClicksToday))).
			Round(usdScale)
	}
	return summary, nil
}

// ResetPartition re-opens today's partition number. Daily totals are kept.
func (s *Service) ResetPartition(ctx context.Context, userID int64, number int) error {
	if !s.grid.Valid(number) {
		return ErrInvalidPartition
	}

	ctx, cancel := context.WithTimeout(ctx, s.limits.OperationTimeout)
	defer cancel()

	now := s.now()
	today := partition.Day(now)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		part, err := s.earningRepo.LockPartition(ctx, userID, today, number)
		if err != nil {
			return persistence(err)
		}
		if part == nil {
			return ErrPartitionNotFound
		}

		start := now
		part.EarnedUSD = decimal.Zero
		part.EarnedTokens = 0
		part.ClicksCount = 0
		part.IsFull = false
		part.StartTime = &start
		part.EndTime = nil
		if err := s.earningRepo.UpdatePartition(ctx, part); err != nil {
			return persistence(err)
		}
		if err := s.earningRepo.SetLastPartitionReset(ctx, part.DailyEarningID, now); err != nil {
			return persistence(err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to reset partition", zap.Int64("userID", userID), zap.Int("partition", number), zap.Error(err))
		return err
	}

	zap.L().Info("partition reset", zap.Int64("userID", userID), zap.Int("partition", number))
	return nil
}
