package energy

//go:generate mockgen -source=energy.go -destination=mock_energy.go -package=energy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/tapearn/internal/domain"
	"github.com/GlebRadaev/tapearn/internal/dto"
	"github.com/GlebRadaev/tapearn/internal/price"
	"github.com/GlebRadaev/tapearn/internal/service/energyservice"
	"github.com/GlebRadaev/tapearn/pkg/utils"
)

type Service interface {
	SyncBalance(ctx context.Context, userID, balance int64, value float64) (*domain.EnergySnapshot, error)
	GetCurrentEnergy(ctx context.Context, userID int64) (*domain.EnergySnapshot, error)
	GetOrComputeParameters(ctx context.Context) (*domain.EnergyParams, error)
}

type EnergyHandler struct {
	energyService Service
}

func New(energyService Service) *EnergyHandler {
	return &EnergyHandler{
		energyService: energyService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, energyservice.ErrInvalidSnapshot):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, price.ErrPriceUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Token price unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// SyncBalance godoc
//
//	@Summary		Sync energy balance
//	@Description	Store the client-reported token balance and energy value as of now.
//	@Tags			Energy
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int							true	"User ID"
//	@Param			request	body		dto.SyncBalanceRequestDTO	true	"Balance and energy"
//	@Success		201		{object}	dto.EnergySnapshotDTO		"Stored snapshot"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users/{userID}/energy [post]
func (h *EnergyHandler) SyncBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.SyncBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := h.energyService.SyncBalance(r.Context(), userID, req.Balance, req.Value)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewEnergySnapshotDTO(snapshot))
}

// GetCurrentEnergy godoc
//
//	@Summary		Get current energy
//	@Description	Energy regenerated since the last sync, capped at the per-partition maximum.
//	@Tags			Energy
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.EnergySnapshotDTO	"Projected energy"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Failure		503		{object}	utils.Response			"Token price unavailable"
//	@Router			/api/users/{userID}/energy [get]
func (h *EnergyHandler) GetCurrentEnergy(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	snapshot, err := h.energyService.GetCurrentEnergy(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEnergySnapshotDTO(snapshot))
}

// GetParameters godoc
//
//	@Summary		Get energy parameters
//	@Description	Regeneration parameters derived from the current token price.
//	@Tags			Energy
//	@Produce		json
//	@Success		200	{object}	dto.EnergyParamsDTO	"Energy parameters"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Failure		503	{object}	utils.Response		"Token price unavailable"
//	@Router			/api/energy/parameters [get]
func (h *EnergyHandler) GetParameters(w http.ResponseWriter, r *http.Request) {
	params, err := h.energyService.GetOrComputeParameters(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEnergyParamsDTO(params))
}
