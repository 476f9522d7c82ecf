package repo

import (
	"github.com/GlebRadaev/tapearn/internal/balancesync"
	"github.com/GlebRadaev/tapearn/internal/pg"
	earningrepo "github.com/GlebRadaev/tapearn/internal/repo/earning-repo"
	userrepo "github.com/GlebRadaev/tapearn/internal/repo/user-repo"
	"github.com/GlebRadaev/tapearn/internal/service/earningservice"
	"github.com/GlebRadaev/tapearn/internal/service/userservice"
)

type UserRepo interface {
	earningservice.UserRepo
	balancesync.UserRepo
	userservice.UserRepo
}

type Repositories struct {
	EarningRepo earningservice.EarningRepo
	UserRepo    UserRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		EarningRepo: earningrepo.New(conn),
		UserRepo:    userrepo.New(conn),
	}
}
