package dto

import (
	"time"

	"github.com/GlebRadaev/tapearn/internal/domain"
)

type SyncBalanceRequestDTO struct {
	Balance int64   `json:"balance" example:"1500"`
	Value   float64 `json:"value" example:"12000.5"`
}

type EnergySnapshotDTO struct {
	Balance         int64     `json:"balance" example:"1500"`
	Value           float64   `json:"value" example:"12000.5"`
	SyncAt          time.Time `json:"sync_at" example:"2024-05-01T10:15:00Z"`
	SecondsRecharge int64     `json:"seconds_recharge" example:"120"`
	ChargePerSecond float64   `json:"charge_per_second" example:"1.7"`
}

type EnergyParamsDTO struct {
	CurrentPrice          float64 `json:"current_price" example:"0.5"`
	DailyLimitTokens      int64   `json:"daily_limit" example:"150000"`
	ChargePerSecond       float64 `json:"charge_per_second" example:"1.7"`
	MaxEnergyPerPartition float64 `json:"max_energy_per_part" example:"18750"`
	DischargePerClick     float64 `json:"discharge_per_click" example:"75"`
}

func NewEnergySnapshotDTO(s *domain.EnergySnapshot) EnergySnapshotDTO {
	return EnergySnapshotDTO{
		Balance:         s.Balance,
		Value:           s.Value,
		SyncAt:          s.SyncAt,
		SecondsRecharge: s.SecondsRecharge,
		ChargePerSecond: s.ChargePerSecond,
	}
}

func NewEnergyParamsDTO(p *domain.EnergyParams) EnergyParamsDTO {
	return EnergyParamsDTO{
		CurrentPrice:          p.CurrentPrice,
		DailyLimitTokens:      p.DailyLimitTokens,
		ChargePerSecond:       p.ChargePerSecond,
		MaxEnergyPerPartition: p.MaxEnergyPerPartition,
		DischargePerClick:     p.DischargePerClick,
	}
}
