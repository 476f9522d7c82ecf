package dto

import (
	"time"

	"github.com/GlebRadaev/tapearn/internal/domain"
)

type CreateUserRequestDTO struct {
	ID int64 `json:"id" example:"42"`
}

type UserDTO struct {
	ID            int64      `json:"id" example:"42"`
	Balance       int64      `json:"balance" example:"40000"`
	SyncedBalance int64      `json:"synced_balance" example:"30000"`
	SyncedAt      *time.Time `json:"synced_at,omitempty" example:"2024-05-01T10:15:00Z"`
}

func NewUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Balance:       u.Balance,
		SyncedBalance: u.SyncedBalance,
		SyncedAt:      u.SyncedAt,
	}
}
