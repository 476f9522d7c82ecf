package userrepo

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
	createUserQuery = `INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING
		RETURNING id, balance, synced_balance, synced_at`
	getUserQuery          = `SELECT id, balance, synced_balance, synced_at FROM users WHERE id = $1`
	incrementBalanceQuery = `UPDATE users SET balance = balance + $1 WHERE id = $2
		RETURNING id, balance, synced_balance, synced_at`
	setSyncedBalanceQuery = `UPDATE users SET synced_balance = $1, synced_at = $2 WHERE id = $3`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts a user with a zero balance. It returns nil when the id is
// already taken.
func (repo *Repository) Create(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, createUserQuery, userID).Scan(&user.ID, &user.Balance, &user.SyncedBalance, &user.SyncedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't create user", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Get(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, getUserQuery, userID).Scan(&user.ID, &user.Balance, &user.SyncedBalance, &user.SyncedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// IncrementBalance adds tokens to the user's balance. It returns nil when the
// user does not exist.
func (repo *Repository) IncrementBalance(ctx context.Context, userID, tokens int64) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, incrementBalanceQuery, tokens, userID).
		Scan(&user.ID, &user.Balance, &user.SyncedBalance, &user.SyncedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't increment balance", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// SetSyncedBalance reports false when no such user exists.
func (repo *Repository) SetSyncedBalance(ctx context.Context, userID, balance int64, at time.Time) (bool, error) {
	tag, err := repo.db.Exec(ctx, setSyncedBalanceQuery, balance, at, userID)
	if err != nil {
		zap.L().Error("can't save synced balance", zap.Int64("userID", userID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
