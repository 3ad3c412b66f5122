package skins

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/dto"
	"github.com/cybercyclones/oceanscan/internal/service/skinservice"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Purchase(ctx context.Context, userID, skinID int) (*skinservice.PurchaseResult, error)
	Equip(ctx context.Context, userID, skinID int) (*skinservice.EquipResult, error)
	GetAvailable(ctx context.Context, userID int) ([]domain.Skin, error)
	GetOwned(ctx context.Context, userID int) ([]skinservice.OwnedSkinView, error)
	GetStatistics(ctx context.Context, userID int) (*skinservice.Statistics, error)
}

type SkinHandler struct {
	skinService Service
}

func New(skinService Service) *SkinHandler {
	return &SkinHandler{
		skinService: skinService,
	}
}

// GetAvailable godoc
//
//	@Summary		Get purchasable skins
//	@Description	Skins currently on sale that the authenticated user does not own yet
//	@Tags			Skins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SkinDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/skins/available [get]
func (h *SkinHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	skins, err := h.skinService.GetAvailable(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.SkinDTO, len(skins))
	for i, s := range skins {
		response[i] = dto.SkinDTO{
			ID:          s.ID,
			Name:        s.Name,
			PricePoints: s.PricePoints,
			Rarity:      s.Rarity,
			Description: s.Description,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOwned godoc
//
//	@Summary		Get owned skins
//	@Description	Skins owned by the authenticated user with the equipped one flagged
//	@Tags			Skins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OwnedSkinDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/skins/owned [get]
func (h *SkinHandler) GetOwned(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	owned, err := h.skinService.GetOwned(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.OwnedSkinDTO, len(owned))
	for i, o := range owned {
		response[i] = dto.OwnedSkinDTO{
			ID:              o.ID,
			Name:            o.Name,
			Rarity:          o.Rarity,
			AcquisitionType: o.AcquisitionType,
			AcquiredAt:      o.AcquiredAt,
			IsEquipped:      o.IsEquipped,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStats godoc
//
//	@Summary		Get skin collection statistics
//	@Description	Counts by rarity and acquisition type plus points spent on purchases
//	@Tags			Skins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SkinStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/skins/stats [get]
func (h *SkinHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.skinService.GetStatistics(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SkinStatsResponseDTO{
		TotalSkins:           stats.TotalSkins,
		RarityBreakdown:      stats.RarityBreakdown,
		AcquisitionBreakdown: stats.AcquisitionBreakdown,
		TotalPointsSpent:     stats.TotalPointsSpent,
	})
}

// Purchase godoc
//
//	@Summary		Purchase a skin
//	@Description	Buy a skin with points. Deduction and ownership are recorded atomically.
//	@Tags			Skins
//	@Security		BearerAuth
//	@Produce		json
//	@Param			skinID	path		int	true	"Skin ID"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid skin id or skin unavailable"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Skin or user not found"
//	@Failure		409		{object}	utils.Response	"Skin already owned"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/skins/{skinID}/purchase [post]
func (h *SkinHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	skinID, err := strconv.Atoi(chi.URLParam(r, "skinID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid skin id")
		return
	}

	result, err := h.skinService.Purchase(r.Context(), userID, skinID)
	if err != nil {
		switch {
		case errors.Is(err, skinservice.ErrUserNotFound), errors.Is(err, skinservice.ErrSkinNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, skinservice.ErrSkinUnavailable):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, skinservice.ErrAlreadyOwned):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, skinservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Message:     "Skin purchased",
		SkinName:    result.SkinName,
		Rarity:      result.Rarity,
		PointsSpent: result.PointsSpent,
		NewBalance:  result.NewBalance,
	})
}

// Equip godoc
//
//	@Summary		Equip a skin
//	@Description	Set an owned skin as the active one. Equipping is free.
//	@Tags			Skins
//	@Security		BearerAuth
//	@Produce		json
//	@Param			skinID	path		int	true	"Skin ID"
//	@Success		200		{object}	dto.EquipResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid skin id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Skin not owned"
//	@Failure		404		{object}	utils.Response	"Skin not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/skins/{skinID}/equip [post]
func (h *SkinHandler) Equip(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	skinID, err := strconv.Atoi(chi.URLParam(r, "skinID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid skin id")
		return
	}

	result, err := h.skinService.Equip(r.Context(), userID, skinID)
	if err != nil {
		switch {
		case errors.Is(err, skinservice.ErrSkinNotOwned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, skinservice.ErrSkinNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.EquipResponseDTO{
		Message:    "Skin equipped",
		SkinName:   result.SkinName,
		Rarity:     result.Rarity,
		EquippedAt: result.EquippedAt,
	})
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, skinservice.ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
