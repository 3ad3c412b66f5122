package points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/dto"
	"github.com/cybercyclones/oceanscan/internal/service/pointsservice"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
)

type Service interface {
	GetSummary(ctx context.Context, userID int) (*pointsservice.Summary, error)
	GetHistory(ctx context.Context, userID int, timeframe string) ([]domain.DiscoveryDetail, error)
	GetBreakdown(ctx context.Context, userID int) (*pointsservice.Breakdown, error)
	Deduct(ctx context.Context, userID, points int) (int, error)
}

type PointsHandler struct {
	pointsService Service
}

func New(pointsService Service) *PointsHandler {
	return &PointsHandler{
		pointsService: pointsService,
	}
}

const defaultTimeframe = "week"

// GetSummary godoc
//
//	@Summary		Points summary
//	@Description	Balance, lifetime total, rank progress and leaderboard position for the authenticated user
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PointsSummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/points/summary [get]
func (h *PointsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.pointsService.GetSummary(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PointsSummaryResponseDTO{
		CurrentBalance:      summary.CurrentBalance,
		TotalEarned:         summary.TotalEarned,
		CurrentRank:         summary.CurrentRank,
		RankTitle:           summary.RankTitle,
		LeaderboardPosition: summary.LeaderboardPosition,
		NextRank:            summary.NextRank,
		PointsToNextRank:    summary.PointsToNextRank,
		DiscoveriesCount:    summary.DiscoveriesCount,
	})
}

// GetHistory godoc
//
//	@Summary		Points history
//	@Description	Point-earning events within the requested timeframe, newest first
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Param			timeframe	query		string	false	"Timeframe"	Enums(week, month, year)	default(week)
//	@Success		200			{object}	dto.PointsHistoryResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid timeframe"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"User not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/points/history [get]
func (h *PointsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = defaultTimeframe
	}

	events, err := h.pointsService.GetHistory(r.Context(), userID, timeframe)
	if err != nil {
		if errors.Is(err, pointsservice.ErrInvalidTimeframe) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}

	response := dto.PointsHistoryResponseDTO{
		Timeframe: timeframe,
		Events:    make([]dto.DiscoveryDTO, len(events)),
	}
	for i, e := range events {
		response.Events[i] = dto.DiscoveryDTO{
			ItemName:      e.ItemName,
			Category:      e.Category,
			Rarity:        e.Rarity,
			PointsAwarded: e.PointsAwarded,
			DiscoveredAt:  e.DiscoveredAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBreakdown godoc
//
//	@Summary		Points breakdown
//	@Description	Earned points grouped by item category and rarity
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PointsBreakdownResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/points/breakdown [get]
func (h *PointsHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	breakdown, err := h.pointsService.GetBreakdown(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PointsBreakdownResponseDTO{
		TotalEarned:     breakdown.TotalEarned,
		FromDiscoveries: breakdown.FromDiscoveries,
		ByCategory:      breakdown.ByCategory,
		ByRarity:        breakdown.ByRarity,
	})
}

// Deduct godoc
//
//	@Summary		Deduct points
//	@Description	Spend points from the authenticated user's balance. The lifetime total is unaffected.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DeductRequestDTO	true	"Deduction request body"
//	@Success		200		{object}	dto.DeductResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/points/deduct [post]
func (h *PointsHandler) Deduct(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DeductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newBalance, err := h.pointsService.Deduct(r.Context(), userID, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, pointsservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, pointsservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, pointsservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DeductResponseDTO{
		PointsDeducted: req.Points,
		NewBalance:     newBalance,
	})
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, pointsservice.ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
