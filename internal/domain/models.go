package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID            int64      `db:"id"`
	Balance       int64      `db:"balance"`
	SyncedBalance int64      `db:"synced_balance"`
	SyncedAt      *time.Time `db:"synced_at"`
}

// DailyEarning aggregates one user's earnings for one calendar date.
type DailyEarning struct {
	ID                 int64           `db:"id"`
	UserID             int64           `db:"user_id"`
	EarningDate        time.Time       `db:"earning_date"`
	TotalEarnedUSD     decimal.Decimal `db:"total_earned_usd"`
	TotalEarnedTokens  int64           `db:"total_earned_tokens"`
	PartitionsUsed     int             `db:"partitions_used"`
	MaxPartitions      int             `db:"max_partitions"`
	DailyLimitReached  bool            `db:"daily_limit_reached"`
	LastPartitionReset *time.Time      `db:"last_partition_reset"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

type EarningPartition struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	DailyEarningID  int64           `db:"daily_earning_id"`
	PartitionNumber int             `db:"partition_number"`
	PartitionDate   time.Time       `db:"partition_date"`
	EarnedUSD       decimal.Decimal `db:"earned_usd"`
	EarnedTokens    int64           `db:"earned_tokens"`
	ClicksCount     int             `db:"clicks_count"`
	MaxClicks       int             `db:"max_clicks"`
	IsFull          bool            `db:"is_full"`
	StartTime       *time.Time      `db:"start_time"`
	EndTime         *time.Time      `db:"end_time"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// EarningHistory is the append-only audit record of one accepted click.
type EarningHistory struct {
	ID             int64           `db:"id"`
	ClickID        uuid.UUID       `db:"click_id"`
	UserID         int64           `db:"user_id"`
	DailyEarningID int64           `db:"daily_earning_id"`
	PartitionID    int64           `db:"partition_id"`
	ClickTimestamp time.Time       `db:"click_timestamp"`
	EarnedUSD      decimal.Decimal `db:"earned_usd"`
	EarnedTokens   int64           `db:"earned_tokens"`
	PriceAtClick   float64         `db:"price_at_click"`
	EnergyConsumed int             `db:"energy_consumed"`
	CreatedAt      time.Time       `db:"created_at"`
}

type EnergySnapshot struct {
	Balance         int64     `json:"balance"`
	Value           float64   `json:"value"`
	SyncAt          time.Time `json:"sync_at"`
	SecondsRecharge int64     `json:"seconds_recharge"`
	ChargePerSecond float64   `json:"charge_per_second"`
}

// EnergyParams are the global regeneration parameters derived from the token price.
type EnergyParams struct {
	CurrentPrice          float64 `json:"current_price"`
	DailyLimitTokens      int64   `json:"daily_limit"`
	ChargePerSecond       float64 `json:"charge_per_second"`
	MaxEnergyPerPartition float64 `json:"max_energy_per_part"`
	DischargePerClick     float64 `json:"discharge_per_click"`
}

type RejectCode string

const (
	RejectDailyLimitReached     RejectCode = "daily_limit_reached"
	RejectPartitionFull         RejectCode = "partition_full"
	RejectPartitionMaxClicks    RejectCode = "partition_max_clicks"
	RejectPartitionLimitReached RejectCode = "partition_limit_reached"
	RejectNoEarningsPossible    RejectCode = "no_earnings_possible"
)

type ClickResult struct {
	Accepted        bool
	Reason          string
	RejectCode      RejectCode
	EarnedUSD       decimal.Decimal
	EarnedTokens    int64
	PartitionNumber int
	ClickID         uuid.UUID
	Status          *DailyStatus
}

type DailyStatus struct {
	UserID                    int64
	EarningDate               time.Time
	TotalEarnedUSD            decimal.Decimal
	TotalEarnedTokens         int64
	DailyLimitUSD             decimal.Decimal
	RemainingUSD              decimal.Decimal
	PartitionsUsed            int
	MaxPartitions             int
	DailyLimitReached         bool
	CurrentPartition          int
	CurrentPartitionEarnedUSD decimal.Decimal
	CurrentPartitionClicks    int
	CurrentPartitionMaxClicks int
	NextPartitionResetTime    *time.Time
	LastClickTime             *time.Time
}

type PartitionStatus struct {
	PartitionNumber int
	EarnedUSD       decimal.Decimal
	EarnedTokens    int64
	ClicksCount     int
	MaxClicks       int
	IsFull          bool
	StartTime       *time.Time
	EndTime         *time.Time
	TimeUntilReset  *time.Duration
}

type DailySummary struct {
	DailyStatus
	Partitions              []PartitionStatus
	TotalClicksToday        int
	AverageEarningsPerClick decimal.Decimal
}
