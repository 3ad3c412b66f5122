package leaderboard

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/dto"
	"github.com/cybercyclones/oceanscan/internal/service/leaderboardservice"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetGlobal(ctx context.Context, limit int) ([]domain.RankedUser, error)
	GetWeekly(ctx context.Context, limit int) ([]domain.WeeklyScore, error)
	GetCategory(ctx context.Context, category string, limit int) ([]domain.CategoryScore, error)
	GetMyRanking(ctx context.Context, userID int) (*leaderboardservice.RankingDetails, error)
	GetNearby(ctx context.Context, userID, window int) ([]leaderboardservice.NearbyEntry, error)
}

type LeaderboardHandler struct {
	leaderboardService Service
}

func New(leaderboardService Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetGlobal godoc
//
//	@Summary		Global leaderboard
//	@Description	Top active users by lifetime points. Users with equal totals share a rank.
//	@Tags			Leaderboard
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Number of entries"	default(10)
//	@Success		200		{array}		dto.LeaderboardEntryDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/leaderboard/global [get]
func (h *LeaderboardHandler) GetGlobal(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.GetGlobal(r.Context(), queryInt(r, "limit"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LeaderboardEntryDTO{
			Rank:        e.Position,
			Username:    e.Username,
			DisplayName: e.DisplayName,
			TotalPoints: e.TotalPoints,
			RankTier:    e.RankTier,
			RankTitle:   domain.RankTitle(e.RankTier),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetWeekly godoc
//
//	@Summary		Weekly leaderboard
//	@Description	Top users by points earned in the trailing seven days
//	@Tags			Leaderboard
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Number of entries"	default(10)
//	@Success		200		{array}		dto.WeeklyEntryDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/leaderboard/weekly [get]
func (h *LeaderboardHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.GetWeekly(r.Context(), queryInt(r, "limit"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WeeklyEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.WeeklyEntryDTO{
			Rank:         i + 1,
			Username:     e.Username,
			DisplayName:  e.DisplayName,
			WeeklyPoints: e.WeeklyPoints,
			RankTier:     e.RankTier,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCategory godoc
//
//	@Summary		Category leaderboard
//	@Description	Top users for one item category over the trailing seven days
//	@Tags			Leaderboard
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category	path		string	true	"Item category"	Enums(PLASTIC, METAL, GLASS, OTHER)
//	@Param			limit		query		int		false	"Number of entries"	default(10)
//	@Success		200			{array}		dto.CategoryEntryDTO
//	@Failure		400			{object}	utils.Response	"Invalid category"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/leaderboard/category/{category} [get]
func (h *LeaderboardHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	entries, err := h.leaderboardService.GetCategory(r.Context(), category, queryInt(r, "limit"))
	if err != nil {
		if errors.Is(err, leaderboardservice.ErrInvalidCategory) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CategoryEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.CategoryEntryDTO{
			Rank:        i + 1,
			Username:    e.Username,
			DisplayName: e.DisplayName,
			Discoveries: e.Discoveries,
			Points:      e.Points,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMyRanking godoc
//
//	@Summary		Current user's ranking details
//	@Description	Global position, weekly points and per-category standings for the authenticated user
//	@Tags			Leaderboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MyRankingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/leaderboard/my_ranking [get]
func (h *LeaderboardHandler) GetMyRanking(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	details, err := h.leaderboardService.GetMyRanking(r.Context(), userID)
	if err != nil {
		if errors.Is(err, leaderboardservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MyRankingResponseDTO{
		Username:         details.Username,
		DisplayName:      details.DisplayName,
		GlobalRank:       details.GlobalRank,
		TotalPoints:      details.TotalPoints,
		WeeklyPoints:     details.WeeklyPoints,
		RankTitle:        details.RankTitle,
		CategoryRankings: details.CategoryRankings,
		TotalDiscoveries: details.TotalDiscoveries,
	})
}

// GetNearby godoc
//
//	@Summary		Nearby leaderboard slice
//	@Description	Users ranked around the authenticated user's global position
//	@Tags			Leaderboard
//	@Security		BearerAuth
//	@Produce		json
//	@Param			window	query		int	false	"Positions above and below"	default(2)
//	@Success		200		{array}		dto.NearbyEntryDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/leaderboard/nearby [get]
func (h *LeaderboardHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.leaderboardService.GetNearby(r.Context(), userID, queryInt(r, "window"))
	if err != nil {
		if errors.Is(err, leaderboardservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.NearbyEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.NearbyEntryDTO{
			Rank:          e.Position,
			Username:      e.Username,
			DisplayName:   e.DisplayName,
			TotalPoints:   e.TotalPoints,
			RankTier:      e.RankTier,
			IsCurrentUser: e.IsCurrentUser,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}
