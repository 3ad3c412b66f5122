package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/dto"
	"github.com/cybercyclones/oceanscan/internal/service/authservice"
	pkgauth "github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/cybercyclones/oceanscan/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Register(ctx context.Context, username, email, password string, displayName *string) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error
	GenerateResetToken(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new account with username, email and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or weak password"
//	@Failure		409		{object}	utils.Response	"Username or email already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUsernameTaken), errors.Is(err, authservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case isPasswordError(err):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message:  "User successfully registered",
		Username: user.Username,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in and receive a bearer token in the Authorization header
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		403		{object}	utils.Response	"Account deactivated"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, authservice.ErrAccountDeactivated):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message:  "User successfully authenticated",
		Username: user.Username,
		Rank:     user.Rank,
	})
}

// ChangePassword godoc
//
//	@Summary		Change password
//	@Description	Change the authenticated user's password
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChangePasswordRequestDTO	true	"Change password request body"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or weak password"
//	@Failure		401		{object}	utils.Response	"User not authorized or wrong current password"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/auth/change_password [post]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.authService.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrWrongPassword):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, authservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case isPasswordError(err):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Password successfully changed",
	})
}

// ResetPasswordRequest godoc
//
//	@Summary		Request a password reset
//	@Description	Issue a short-lived reset token for the given email. The response is identical whether or not the email is registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ResetPasswordRequestDTO	true	"Reset request body"
//	@Success		200		{object}	dto.ResetPasswordResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/auth/reset_password_request [post]
func (h *AuthHandler) ResetPasswordRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.GenerateResetToken(r.Context(), req.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ResetPasswordResponseDTO{
		Message:    "If the email is registered, a reset token has been issued",
		ResetToken: token,
	})
}

// ResetPassword godoc
//
//	@Summary		Reset password by token
//	@Description	Set a new password using a previously issued reset token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string						true	"Reset token"
//	@Param			request	body		dto.ResetPasswordConfirmDTO	true	"New password body"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body, weak password or invalid token"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/auth/reset_password/{token} [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req dto.ResetPasswordConfirmDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.authService.ResetPassword(r.Context(), token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidResetToken), isPasswordError(err):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Password successfully reset",
	})
}

func isPasswordError(err error) bool {
	return errors.Is(err, validate.ErrPasswordTooShort) ||
		errors.Is(err, validate.ErrPasswordNoUpper) ||
		errors.Is(err, validate.ErrPasswordNoLower) ||
		errors.Is(err, validate.ErrPasswordNoDigit)
}
