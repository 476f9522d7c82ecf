package user

//go:generate mockgen -source=user.go -destination=mock_user.go -package=user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/tapearn/internal/domain"
	"github.com/GlebRadaev/tapearn/internal/dto"
	"github.com/GlebRadaev/tapearn/internal/service/userservice"
	"github.com/GlebRadaev/tapearn/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int64) (*domain.User, error)
	Get(ctx context.Context, userID int64) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userservice.ErrInvalidUserID):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, userservice.ErrUserExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, userservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Create godoc
//
//	@Summary		Create a user
//	@Description	Register a user id with a zero balance.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"User id"
//	@Success		201		{object}	dto.UserDTO					"Created user"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		409		{object}	utils.Response				"User already exists"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Create(r.Context(), req.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewUserDTO(user))
}

// Get godoc
//
//	@Summary		Get a user
//	@Description	Balance credited by clicks and the last balance copied from the energy cache.
//	@Tags			Users
//	@Produce		json
//	@Param			userID	path		int				true	"User ID"
//	@Success		200		{object}	dto.UserDTO		"User"
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{userID} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.UserID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(user))
}
