package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/dto"
	"github.com/cybercyclones/oceanscan/internal/service/userservice"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetProfile(ctx context.Context, userID int) (*userservice.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, userID int, displayName string) (*domain.User, error)
	Deactivate(ctx context.Context, userID int) error
	Reactivate(ctx context.Context, userID int) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile godoc
//
//	@Summary		Get own profile
//	@Description	Full profile of the authenticated user including rank progress and leaderboard position
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/users/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		Username:            profile.Username,
		DisplayName:         profile.DisplayName,
		Rank:                profile.Rank,
		RankTitle:           profile.RankTitle,
		PointsBalance:       profile.PointsBalance,
		TotalPointsEarned:   profile.TotalPointsEarned,
		LeaderboardPosition: profile.LeaderboardPosition,
		ActiveSkinID:        profile.ActiveSkinID,
		MemberSince:         profile.MemberSince,
		LastLogin:           profile.LastLogin,
	})
}

// UpdateDisplayName godoc
//
//	@Summary		Update display name
//	@Description	Set the authenticated user's public display name
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateDisplayNameRequestDTO	true	"Display name body"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or empty display name"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/users/update_display_name [patch]
func (h *UserHandler) UpdateDisplayName(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UpdateDisplayNameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.userService.UpdateDisplayName(r.Context(), userID, req.DisplayName); err != nil {
		if errors.Is(err, userservice.ErrEmptyDisplayName) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Display name updated",
	})
}

// Deactivate godoc
//
//	@Summary		Deactivate account
//	@Description	Hide the authenticated user from leaderboards and block future logins
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/users/deactivate [post]
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.userService.Deactivate(r.Context(), userID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Account deactivated",
	})
}

// Reactivate godoc
//
//	@Summary		Reactivate account
//	@Description	Restore a previously deactivated account
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/users/reactivate [post]
func (h *UserHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.userService.Reactivate(r.Context(), userID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Account reactivated",
	})
}

// GetByUsername godoc
//
//	@Summary		Get public profile
//	@Description	Public subset of another user's profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path		string	true	"Username"
//	@Success		200			{object}	dto.PublicProfileResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"User not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/users/by_username/{username} [get]
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		utils.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PublicProfileResponseDTO{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Rank:        user.Rank,
		RankTitle:   domain.RankTitle(user.Rank),
		TotalPoints: user.TotalPointsEarned,
	})
}

// Exists godoc
//
//	@Summary		Check username availability
//	@Description	Report whether a username is already registered
//	@Tags			Users
//	@Produce		json
//	@Param			username	path		string	true	"Username"
//	@Success		200			{object}	dto.UsernameExistsResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/users/exists/{username} [get]
func (h *UserHandler) Exists(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UsernameExistsResponseDTO{
		Username: username,
		Exists:   user != nil,
	})
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, userservice.ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
