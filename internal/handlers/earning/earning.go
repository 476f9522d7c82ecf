package earning

//go:generate mockgen -source=earning.go -destination=mock_earning.go -package=earning

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/tapearn/internal/domain"
	"github.com/GlebRadaev/tapearn/internal/dto"
	"github.com/GlebRadaev/tapearn/internal/price"
	"github.com/GlebRadaev/tapearn/internal/service/earningservice"
	"github.com/GlebRadaev/tapearn/pkg/utils"
)

type Service interface {
	Click(ctx context.Context, userID int64, energyConsumed int) (*domain.ClickResult, error)
	GetStatus(ctx context.Context, userID int64, date *time.Time) (*domain.DailyStatus, error)
	GetSummary(ctx context.Context, userID int64, date *time.Time) (*domain.DailySummary, error)
	ResetPartition(ctx context.Context, userID int64, number int) error
}

type EarningHandler struct {
	earningService Service
}

func New(earningService Service) *EarningHandler {
	return &EarningHandler{
		earningService: earningService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, price.ErrPriceUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Token price unavailable")
	case errors.Is(err, earningservice.ErrInvalidPrice):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, earningservice.ErrUserNotFound),
		errors.Is(err, earningservice.ErrPartitionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, earningservice.ErrInvalidPartition):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Click godoc
//
//	@Summary		Register a click
//	@Description	Credit one click at the live token price. Limit rejections are returned with accepted=false.
//	@Tags			Earnings
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int					true	"User ID"
//	@Param			request	body		dto.ClickRequestDTO	true	"Energy spent on the click"
//	@Success		200		{object}	dto.ClickResponseDTO	"Click result"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"User not found"
//	@Failure		422		{object}	utils.Response			"Invalid token price"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Failure		503		{object}	utils.Response			"Token price unavailable"
//	@Router			/api/users/{userID}/clicks [post]
func (h *EarningHandler) Click(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.ClickRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EnergyConsumed < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "energy_consumed must not be negative")
		return
	}

	result, err := h.earningService.Click(r.Context(), userID, req.EnergyConsumed)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewClickResponseDTO(result))
}

// GetStatus godoc
//
//	@Summary		Get daily earning status
//	@Description	Totals for the given date (today by default) and the current partition.
//	@Tags			Earnings
//	@Produce		json
//	@Param			userID	path		int		true	"User ID"
//	@Param			date	query		string	false	"Date, YYYY-MM-DD"
//	@Success		200		{object}	dto.DailyStatusDTO	"Daily status"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/users/{userID}/earnings/status [get]
func (h *EarningHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := utils.Date(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	status, err := h.earningService.GetStatus(r.Context(), userID, date)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDailyStatusDTO(status))
}

// GetSummary godoc
//
//	@Summary		Get daily earning summary
//	@Description	Daily status plus every partition of the day.
//	@Tags			Earnings
//	@Produce		json
//	@Param			userID	path		int		true	"User ID"
//	@Param			date	query		string	false	"Date, YYYY-MM-DD"
//	@Success		200		{object}	dto.DailySummaryDTO	"Daily summary"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/users/{userID}/earnings/summary [get]
func (h *EarningHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := utils.Date(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.earningService.GetSummary(r.Context(), userID, date)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDailySummaryDTO(summary))
}

// ResetPartition godoc
//
//	@Summary		Reset a partition
//	@Description	Administrative reset of today's partition counters. Daily totals are kept.
//	@Tags			Admin
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Param			number	path		int	true	"Partition number"
//	@Success		200		{object}	utils.Response	"Partition reset"
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Partition not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{userID}/partitions/{number}/reset [post]
func (h *EarningHandler) ResetPartition(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	number, err := utils.PartitionNumber(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.earningService.ResetPartition(r.Context(), userID, number); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "partition reset")
}
