package syncstatus

//go:generate mockgen -source=syncstatus.go -destination=mock_syncstatus.go -package=syncstatus

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/tapearn/internal/balancesync"
	"github.com/GlebRadaev/tapearn/pkg/utils"
)

type Service interface {
	Stats() balancesync.Stats
	RunNow(ctx context.Context) (*balancesync.Stats, error)
	Schedule() balancesync.ScheduleInfo
	Health(ctx context.Context) balancesync.Health
	Statistics(ctx context.Context) (*balancesync.Statistics, error)
}

type SyncHandler struct {
	syncService Service
}

func New(syncService Service) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// Status godoc
//
//	@Summary		Balance sync status
//	@Description	Statistics of the last balance sync run.
//	@Tags			Sync
//	@Produce		json
//	@Success		200	{object}	balancesync.Stats	"Last run"
//	@Router			/api/sync/status [get]
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.syncService.Stats())
}

// Force godoc
//
//	@Summary		Force balance sync
//	@Description	Run the balance sync immediately and wait for it to finish.
//	@Tags			Sync
//	@Produce		json
//	@Success		200	{object}	balancesync.Stats	"Finished run"
//	@Failure		409	{object}	utils.Response		"Sync already running"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/sync/force [post]
func (h *SyncHandler) Force(w http.ResponseWriter, r *http.Request) {
	stats, err := h.syncService.RunNow(r.Context())
	if err != nil {
		if errors.Is(err, balancesync.ErrSyncInProgress) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// Schedule godoc
//
//	@Summary		Balance sync schedule
//	@Description	Cron expression of the periodic sync and its next and previous runs.
//	@Tags			Sync
//	@Produce		json
//	@Success		200	{object}	balancesync.ScheduleInfo	"Schedule"
//	@Router			/api/sync/schedule [get]
func (h *SyncHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.syncService.Schedule())
}

// Health godoc
//
//	@Summary		Balance sync health
//	@Description	Cache connectivity and snapshot count. Failed checks are reported in the body.
//	@Tags			Sync
//	@Produce		json
//	@Success		200	{object}	balancesync.Health	"Health"
//	@Router			/api/sync/health [get]
func (h *SyncHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.syncService.Health(r.Context()))
}

// Statistics godoc
//
//	@Summary		Balance sync statistics
//	@Description	Last run together with totals over the cached energy balances.
//	@Tags			Sync
//	@Produce		json
//	@Success		200	{object}	balancesync.Statistics	"Statistics"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/sync/statistics [get]
func (h *SyncHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.syncService.Statistics(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
