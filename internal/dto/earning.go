package dto

import (
	"time"

	"github.com/GlebRadaev/tapearn/internal/domain"
)

type ClickRequestDTO struct {
	EnergyConsumed int `json:"energy_consumed" example:"100"`
}

type ClickResponseDTO struct {
	Accepted        bool            `json:"accepted" example:"true"`
	Reason          string          `json:"reason,omitempty" example:"Partition 2 is full"`
	RejectCode      string          `json:"reject_code,omitempty" example:"partition_full"`
	EarnedUSD       float64         `json:"earned_usd" example:"0.01"`
	EarnedTokens    int64           `json:"earned_tokens" example:"20000"`
	PartitionNumber int             `json:"partition_number" example:"2"`
	ClickID         string          `json:"click_id,omitempty" example:"3f1c2a9e-5d7b-4c1e-9a3f-1b2c3d4e5f60"`
	Status          *DailyStatusDTO `json:"status,omitempty"`
}

type DailyStatusDTO struct {
	UserID                    int64      `json:"user_id" example:"42"`
	EarningDate               string     `json:"earning_date" example:"2024-05-01"`
	TotalEarnedUSD            float64    `json:"total_earned_usd" example:"12.5"`
	TotalEarnedTokens         int64      `json:"total_earned_tokens" example:"25000000"`
	DailyLimitUSD             float64    `json:"daily_limit_usd" example:"30"`
	RemainingUSD              float64    `json:"remaining_usd" example:"17.5"`
	PartitionsUsed            int        `json:"partitions_used" example:"3"`
	MaxPartitions             int        `json:"max_partitions" example:"6"`
	DailyLimitReached         bool       `json:"daily_limit_reached" example:"false"`
	CurrentPartition          int        `json:"current_partition" example:"3"`
	CurrentPartitionEarnedUSD float64    `json:"current_partition_earned_usd" example:"2.5"`
	CurrentPartitionClicks    int        `json:"current_partition_clicks" example:"125"`
	CurrentPartitionMaxClicks int        `json:"current_partition_max_clicks" example:"250"`
	NextPartitionResetTime    *time.Time `json:"next_partition_reset_time,omitempty" example:"2024-05-01T12:00:00Z"`
	LastClickTime             *time.Time `json:"last_click_time,omitempty" example:"2024-05-01T10:15:00Z"`
}

type PartitionStatusDTO struct {
	PartitionNumber       int        `json:"partition_number" example:"1"`
	EarnedUSD             float64    `json:"earned_usd" example:"5"`
	EarnedTokens          int64      `json:"earned_tokens" example:"10000000"`
	ClicksCount           int        `json:"clicks_count" example:"250"`
	MaxClicks             int        `json:"max_clicks" example:"250"`
	IsFull                bool       `json:"is_full" example:"true"`
	StartTime             *time.Time `json:"start_time,omitempty" example:"2024-05-01T00:00:00Z"`
	EndTime               *time.Time `json:"end_time,omitempty" example:"2024-05-01T03:10:00Z"`
	TimeUntilResetSeconds *int64     `json:"time_until_reset_seconds,omitempty" example:"3600"`
}

type DailySummaryDTO struct {
	DailyStatusDTO
	Partitions              []PartitionStatusDTO `json:"partitions"`
	TotalClicksToday        int                  `json:"total_clicks_today" example:"375"`
	AverageEarningsPerClick float64              `json:"average_earnings_per_click" example:"0.033333"`
}

func NewDailyStatusDTO(s *domain.DailyStatus) *DailyStatusDTO {
	if s == nil {
		return nil
	}
	return &DailyStatusDTO{
		UserID:                    s.UserID,
		EarningDate:               s.EarningDate.Format(time.DateOnly),
		TotalEarnedUSD:            s.TotalEarnedUSD.InexactFloat64(),
		TotalEarnedTokens:         s.TotalEarnedTokens,
		DailyLimitUSD:             s.DailyLimitUSD.InexactFloat64(),
		RemainingUSD:              s.RemainingUSD.InexactFloat64(),
		PartitionsUsed:            s.PartitionsUsed,
		MaxPartitions:             s.MaxPartitions,
		DailyLimitReached:         s.DailyLimitReached,
		CurrentPartition:          s.CurrentPartition,
		CurrentPartitionEarnedUSD: s.CurrentPartitionEarnedUSD.InexactFloat64(),
		CurrentPartitionClicks:    s.CurrentPartitionClicks,
		CurrentPartitionMaxClicks: s.CurrentPartitionMaxClicks,
		NextPartitionResetTime:    s.NextPartitionResetTime,
		LastClickTime:             s.LastClickTime,
	}
}

func NewClickResponseDTO(res *domain.ClickResult) ClickResponseDTO {
	out := ClickResponseDTO{
		Accepted:        res.Accepted,
		Reason:          res.Reason,
		RejectCode:      string(res.RejectCode),
		EarnedUSD:       res.EarnedUSD.InexactFloat64(),
		EarnedTokens:    res.EarnedTokens,
		PartitionNumber: res.PartitionNumber,
		Status:          NewDailyStatusDTO(res.Status),
	}
	if res.Accepted {
		out.ClickID = res.ClickID.String()
	}
	return out
}

func NewDailySummaryDTO(s *domain.DailySummary) DailySummaryDTO {
	out := DailySummaryDTO{
		DailyStatusDTO:          *NewDailyStatusDTO(&s.DailyStatus),
		Partitions:              make([]PartitionStatusDTO, len(s.Partitions)),
		TotalClicksToday:        s.TotalClicksToday,
		AverageEarningsPerClick: s.AverageEarningsPerClick.InexactFloat64(),
	}
	for i, p := range s.Partitions {
		out.Partitions[i] = PartitionStatusDTO{
			PartitionNumber: p.PartitionNumber,
			EarnedUSD:       p.EarnedUSD.InexactFloat64(),
			EarnedTokens:    p.EarnedTokens,
			ClicksCount:     p.ClicksCount,
			MaxClicks:       p.MaxClicks,
			IsFull:          p.IsFull,
			StartTime:       p.StartTime,
			EndTime:         p.EndTime,
		}
		if p.TimeUntilReset != nil {
			seconds := int64(p.TimeUntilReset.Seconds())
			out.Partitions[i].TimeUntilResetSeconds = &seconds
		}
	}
	return out
}
