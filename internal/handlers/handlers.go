package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/tapearn/docs"
	earninghandlers "github.com/GlebRadaev/tapearn/internal/handlers/earning"
	energyhandlers "github.com/GlebRadaev/tapearn/internal/handlers/energy"
	synchandlers "github.com/GlebRadaev/tapearn/internal/handlers/syncstatus"
	userhandlers "github.com/GlebRadaev/tapearn/internal/handlers/user"
	"github.com/GlebRadaev/tapearn/internal/service"
)

type EarningHandler interface {
	Click(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	ResetPartition(w http.ResponseWriter, r *http.Request)
}

type EnergyHandler interface {
	SyncBalance(w http.ResponseWriter, r *http.Request)
	GetCurrentEnergy(w http.ResponseWriter, r *http.Request)
	GetParameters(w http.ResponseWriter, r *http.Request)
}

type SyncHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Force(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	EarningHandler EarningHandler
	EnergyHandler  EnergyHandler
	SyncHandler    SyncHandler
	UserHandler    UserHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		EarningHandler: earninghandlers.New(s.EarningService),
		EnergyHandler:  energyhandlers.New(s.EnergyService),
		SyncHandler:    synchandlers.New(s.SyncService),
		UserHandler:    userhandlers.New(s.UserService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/users", h.UserHandler.Create)
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/", h.UserHandler.Get)
			r.Post("/clicks", h.EarningHandler.Click)
			r.Get("/earnings/status", h.EarningHandler.GetStatus)
			r.Get("/earnings/summary", h.EarningHandler.GetSummary)
			r.Post("/energy", h.EnergyHandler.SyncBalance)
			r.Get("/energy", h.EnergyHandler.GetCurrentEnergy)
		})
		r.Get("/energy/parameters", h.EnergyHandler.GetParameters)
		r.Post("/admin/users/{userID}/partitions/{number}/reset", h.EarningHandler.ResetPartition)
		r.Route("/sync", func(r chi.Router) {
			r.Get("/status", h.SyncHandler.Status)
			r.Post("/force", h.SyncHandler.Force)
			r.Get("/schedule", h.SyncHandler.Schedule)
			r.Get("/health", h.SyncHandler.Health)
			r.Get("/statistics", h.SyncHandler.Statistics)
		})
	})

	return r
}
