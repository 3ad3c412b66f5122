package discoveries

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/cybercyclones/oceanscan/internal/classifier"
	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/dto"
	"github.com/cybercyclones/oceanscan/internal/service/discoveryservice"
	"github.com/cybercyclones/oceanscan/internal/service/pointsservice"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
)

type Service interface {
	ProcessScan(ctx context.Context, userID int, encodedImage string) (*discoveryservice.ScanResult, error)
	GetHistory(ctx context.Context, userID int) ([]domain.DiscoveryDetail, error)
	GetStatistics(ctx context.Context, userID int) (*discoveryservice.Statistics, error)
	GetUndiscovered(ctx context.Context, userID int) ([]domain.Item, error)
	GetPopular(ctx context.Context) ([]domain.PopularDiscovery, error)
}

type DiscoveryHandler struct {
	discoveryService Service
}

func New(discoveryService Service) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryService: discoveryService,
	}
}

const maxImageSize = 10 << 20

// Scan godoc
//
//	@Summary		Scan a piece of ocean debris
//	@Description	Upload a photo, classify it against the item catalog and award points for a first-time discovery
//	@Tags			Discoveries
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Photo of the item"
//	@Success		200		{object}	dto.ScanResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing image or classification failure"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Item not recognized"
//	@Failure		409		{object}	utils.Response	"Item already discovered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/discoveries/scan [post]
func (h *DiscoveryHandler) Scan(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read image")
		return
	}

	result, err := h.discoveryService.ProcessScan(r.Context(), userID, base64.StdEncoding.EncodeToString(imageData))
	if err != nil {
		switch {
		case errors.Is(err, discoveryservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, discoveryservice.ErrItemNotRecognized):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, pointsservice.ErrAlreadyDiscovered):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, classifier.ErrClassification):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ScanResponseDTO{
		ItemName:            result.ItemName,
		Category:            result.Category,
		PointsAwarded:       result.PointsAwarded,
		NewTotalPoints:      result.NewTotalPoints,
		EnvironmentalImpact: result.EnvironmentalImpact,
		DecompositionTime:   result.DecompositionTime,
		ThreatLevel:         result.ThreatLevel,
	})
}

// GetHistory godoc
//
//	@Summary		Get discovery history
//	@Description	List the authenticated user's discoveries, newest first
//	@Tags			Discoveries
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DiscoveryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/discoveries/history [get]
func (h *DiscoveryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	discoveries, err := h.discoveryService.GetHistory(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.DiscoveryDTO, len(discoveries))
	for i, d := range discoveries {
		response[i] = dto.DiscoveryDTO{
			ItemName:      d.ItemName,
			Category:      d.Category,
			Rarity:        d.Rarity,
			PointsAwarded: d.PointsAwarded,
			DiscoveredAt:  d.DiscoveredAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStats godoc
//
//	@Summary		Get discovery statistics
//	@Description	Aggregate totals, category and rarity breakdowns and environmental impact for the authenticated user
//	@Tags			Discoveries
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DiscoveryStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/discoveries/stats [get]
func (h *DiscoveryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.discoveryService.GetStatistics(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DiscoveryStatsResponseDTO{
		TotalDiscoveries:         stats.TotalDiscoveries,
		Categories:               stats.Categories,
		Rarities:                 stats.Rarities,
		TotalDecompositionYears:  stats.TotalDecompositionYears,
		DiscoveriesLastWeek:      stats.DiscoveriesLastWeek,
		TotalPointsFromDiscovery: stats.TotalPointsFromDiscovery,
	})
}

// GetUndiscovered godoc
//
//	@Summary		Get undiscovered items
//	@Description	List catalog items the authenticated user has not discovered yet
//	@Tags			Discoveries
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UndiscoveredItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/discoveries/undiscovered [get]
func (h *DiscoveryHandler) GetUndiscovered(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	items, err := h.discoveryService.GetUndiscovered(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.UndiscoveredItemDTO, len(items))
	for i, item := range items {
		response[i] = dto.UndiscoveredItemDTO{
			Name:        item.Name,
			Category:    item.Category,
			Rarity:      item.Rarity,
			PointValue:  item.PointValue,
			ThreatLevel: item.ThreatLevel,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPopular godoc
//
//	@Summary		Get most discovered items
//	@Description	Top discovered items across all users
//	@Tags			Discoveries
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PopularDiscoveryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/discoveries/popular [get]
func (h *DiscoveryHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	popular, err := h.discoveryService.GetPopular(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PopularDiscoveryDTO, len(popular))
	for i, p := range popular {
		response[i] = dto.PopularDiscoveryDTO{
			ItemName:        p.ItemName,
			Category:        p.Category,
			TimesDiscovered: p.TimesDiscovered,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, discoveryservice.ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
