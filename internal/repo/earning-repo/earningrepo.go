package earningrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tapearn/internal/domain"
	"github.com/GlebRadaev/tapearn/internal/pg"
)

const (
	dailyColumns = `id, user_id, earning_date, total_earned_usd, total_earned_tokens, partitions_used,
		max_partitions, daily_limit_reached, last_partition_reset, created_at, updated_at`
	partitionColumns = `id, user_id, daily_earning_id, partition_number, partition_date, earned_usd,
		earned_tokens, clicks_count, max_clicks, is_full, start_time, end_time, created_at, updated_at`
	historyColumns = `id, click_id, user_id, daily_earning_id, partition_id, click_timestamp, earned_usd,
		earned_tokens, price_at_click, energy_consumed, created_at`

	createDailyQuery = `INSERT INTO daily_earnings (user_id, earning_date, max_partitions)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, earning_date) DO NOTHING`
	selectDailyQuery = `SELECT ` + dailyColumns + ` FROM daily_earnings WHERE user_id = $1 AND earning_date = $2`
	lockDailyQuery   = selectDailyQuery + ` FOR UPDATE`
	updateDailyQuery = `UPDATE daily_earnings
		SET total_earned_usd = $1, total_earned_tokens = $2, partitions_used = $3, daily_limit_reached = $4, updated_at = NOW()
		WHERE id = $5`
	setLastResetQuery = `UPDATE daily_earnings SET last_partition_reset = $1, updated_at = NOW() WHERE id = $2`

	createPartitionQuery = `INSERT INTO earning_partitions (user_id, daily_earning_id, partition_number, partition_date, max_clicks, start_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, partition_date, partition_number) DO NOTHING`
	selectPartitionQuery = `SELECT ` + partitionColumns + ` FROM earning_partitions
		WHERE user_id = $1 AND partition_date = $2 AND partition_number = $3`
	lockPartitionQuery  = selectPartitionQuery + ` FOR UPDATE`
	listPartitionsQuery = `SELECT ` + partitionColumns + ` FROM earning_partitions
		WHERE user_id = $1 AND partition_date = $2
		ORDER BY partition_number`
	updatePartitionQuery = `UPDATE earning_partitions
		SET earned_usd = $1, earned_tokens = $2, clicks_count = $3, is_full = $4, start_time = $5, end_time = $6, updated_at = NOW()
		WHERE id = $7`

	insertHistoryQuery = `INSERT INTO earning_history (click_id, user_id, daily_earning_id, partition_id, click_timestamp,
		earned_usd, earned_tokens, price_at_click, energy_consumed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	lastHistoryQuery = `SELECT ` + historyColumns + ` FROM earning_history
		WHERE daily_earning_id = $1
		ORDER BY click_timestamp DESC, id DESC
		LIMIT 1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDaily(row pgx.Row) (*domain.DailyEarning, error) {
	var d domain.DailyEarning
	err := row.Scan(&d.ID, &d.UserID, &d.EarningDate, &d.TotalEarnedUSD, &d.TotalEarnedTokens, &d.PartitionsUsed,
		&d.MaxPartitions, &d.DailyLimitReached, &d.LastPartitionReset, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanPartition(row pgx.Row) (*domain.EarningPartition, error) {
	var p domain.EarningPartition
	err := row.Scan(&p.ID, &p.UserID, &p.DailyEarningID, &p.PartitionNumber, &p.PartitionDate, &p.EarnedUSD,
		&p.EarnedTokens, &p.ClicksCount, &p.MaxClicks, &p.IsFull, &p.StartTime, &p.EndTime, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LockOrCreateDaily returns the (user, date) aggregate locked for the rest of
// the transaction, creating an empty one first when absent.
func (repo *Repository) LockOrCreateDaily(ctx context.Context, userID int64, date time.Time, maxPartitions int) (*domain.DailyEarning, error) {
	if _, err := repo.db.Exec(ctx, createDailyQuery, userID, date, maxPartitions); err != nil {
		zap.L().Error("can't create daily earning", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	daily, err := scanDaily(repo.db.QueryRow(ctx, lockDailyQuery, userID, date))
	if err != nil {
		zap.L().Error("can't lock daily earning", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return daily, nil
}

func (repo *Repository) GetDaily(ctx context.Context, userID int64, date time.Time) (*domain.DailyEarning, error) {
	daily, err := scanDaily(repo.db.QueryRow(ctx, selectDailyQuery, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get daily earning", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return daily, nil
}

func (repo *Repository) UpdateDaily(ctx context.Context, daily *domain.DailyEarning) error {
	_, err := repo.db.Exec(ctx, updateDailyQuery,
		daily.TotalEarnedUSD, daily.TotalEarnedTokens, daily.PartitionsUsed, daily.DailyLimitReached, daily.ID)
	if err != nil {
		zap.L().Error("can't update daily earning", zap.Int64("dailyID", daily.ID), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) SetLastPartitionReset(ctx context.Context, dailyID int64, at time.Time) error {
	_, err := repo.db.Exec(ctx, setLastResetQuery, at, dailyID)
	if err != nil {
		zap.L().Error("can't stamp partition reset", zap.Int64("dailyID", dailyID), zap.Error(err))
		return err
	}
	return nil
}

// LockOrCreatePartition locks partition number of the daily aggregate. The
// returned flag reports whether the row was created by this call.
func (repo *Repository) LockOrCreatePartition(
	ctx context.Context, daily *domain.DailyEarning, number, maxClicks int, start time.Time,
) (*domain.EarningPartition, bool, error) {
	tag, err := repo.db.Exec(ctx, createPartitionQuery,
		daily.UserID, daily.ID, number, daily.EarningDate, maxClicks, start)
	if err != nil {
		zap.L().Error("can't create partition", zap.Int64("userID", daily.UserID), zap.Int("partition", number), zap.Error(err))
		return nil, false, err
	}
	p, err := scanPartition(repo.db.QueryRow(ctx, lockPartitionQuery, daily.UserID, daily.EarningDate, number))
	if err != nil {
		zap.L().Error("can't lock partition", zap.Int64("userID", daily.UserID), zap.Int("partition", number), zap.Error(err))
		return nil, false, err
	}
	return p, tag.RowsAffected() == 1, nil
}

func (repo *Repository) GetPartition(ctx context.Context, userID int64, date time.Time, number int) (*domain.EarningPartition, error) {
	return repo.findPartition(ctx, selectPartitionQuery, userID, date, number)
}

func (repo *Repository) LockPartition(ctx context.Context, userID int64, date time.Time, number int) (*domain.EarningPartition, error) {
	return repo.findPartition(ctx, lockPartitionQuery, userID, date, number)
}

func (repo *Repository) findPartition(ctx context.Context, query string, userID int64, date time.Time, number int) (*domain.EarningPartition, error) {
	p, err := scanPartition(repo.db.QueryRow(ctx, query, userID, date, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get partition", zap.Int64("userID", userID), zap.Int("partition", number), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (repo *Repository) ListPartitions(ctx context.Context, userID int64, date time.Time) ([]domain.EarningPartition, error) {
	rows, err := repo.db.Query(ctx, listPartitionsQuery, userID, date)
	if err != nil {
		zap.L().Error("can't list partitions", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var partitions []domain.EarningPartition
	for rows.Next() {
		p, err := scanPartition(rows)
		if err != nil {
			zap.L().Error("can't scan partition", zap.Error(err))
			return nil, err
		}
		partitions = append(partitions, *p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over rows", zap.Error(err))
		return nil, err
	}
	return partitions, nil
}

func (repo *Repository) UpdatePartition(ctx context.Context, p *domain.EarningPartition) error {
	_, err := repo.db.Exec(ctx, updatePartitionQuery,
		p.EarnedUSD, p.EarnedTokens, p.ClicksCount, p.IsFull, p.StartTime, p.EndTime, p.ID)
	if err != nil {
		zap.L().Error("can't update partition", zap.Int64("partitionID", p.ID), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) InsertHistory(ctx context.Context, h *domain.EarningHistory) (*domain.EarningHistory, error) {
	err := repo.db.QueryRow(ctx, insertHistoryQuery,
		h.ClickID, h.UserID, h.DailyEarningID, h.PartitionID, h.ClickTimestamp,
		h.EarnedUSD, h.EarnedTokens, h.PriceAtClick, h.EnergyConsumed,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		zap.L().Error("can't save earning history", zap.Int64("userID", h.UserID), zap.Error(err))
		return nil, err
	}
	return h, nil
}

func (repo *Repository) LastHistory(ctx context.Context, dailyID int64) (*domain.EarningHistory, error) {
	var h domain.EarningHistory
	err := repo.db.QueryRow(ctx, lastHistoryQuery, dailyID).Scan(
		&h.ID, &h.ClickID, &h.UserID, &h.DailyEarningID, &h.PartitionID, &h.ClickTimestamp, &h.EarnedUSD,
		&h.EarnedTokens, &h.PriceAtClick, &h.EnergyConsumed, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get last earning history", zap.Int64("dailyID", dailyID), zap.Error(err))
		return nil, err
	}
	return &h, nil
}
