package handlers

import (
	"net/http"

	_ "github.com/cybercyclones/oceanscan/docs"
	authhandlers "github.com/cybercyclones/oceanscan/internal/handlers/auth"
	discoveryhandlers "github.com/cybercyclones/oceanscan/internal/handlers/discoveries"
	leaderboardhandlers "github.com/cybercyclones/oceanscan/internal/handlers/leaderboard"
	pointshandlers "github.com/cybercyclones/oceanscan/internal/handlers/points"
	skinhandlers "github.com/cybercyclones/oceanscan/internal/handlers/skins"
	userhandlers "github.com/cybercyclones/oceanscan/internal/handlers/users"
	"github.com/cybercyclones/oceanscan/internal/service"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	ResetPasswordRequest(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type DiscoveryHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetUndiscovered(w http.ResponseWriter, r *http.Request)
	GetPopular(w http.ResponseWriter, r *http.Request)
}

type LeaderboardHandler interface {
	GetGlobal(w http.ResponseWriter, r *http.Request)
	GetWeekly(w http.ResponseWriter, r *http.Request)
	GetCategory(w http.ResponseWriter, r *http.Request)
	GetMyRanking(w http.ResponseWriter, r *http.Request)
	GetNearby(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetBreakdown(w http.ResponseWriter, r *http.Request)
	Deduct(w http.ResponseWriter, r *http.Request)
}

type SkinHandler interface {
	GetAvailable(w http.ResponseWriter, r *http.Request)
	GetOwned(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	Equip(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateDisplayName(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Reactivate(w http.ResponseWriter, r *http.Request)
	GetByUsername(w http.ResponseWriter, r *http.Request)
	Exists(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	DiscoveryHandler   DiscoveryHandler
	LeaderboardHandler LeaderboardHandler
	PointsHandler      PointsHandler
	SkinHandler        SkinHandler
	UserHandler        UserHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		DiscoveryHandler:   discoveryhandlers.New(s.DiscoveryService),
		LeaderboardHandler: leaderboardhandlers.New(s.LeaderboardService),
		PointsHandler:      pointshandlers.New(s.PointsService),
		SkinHandler:        skinhandlers.New(s.SkinService),
		UserHandler:        userhandlers.New(s.UserService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/", root)
	r.Get("/health", health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/reset_password_request", h.AuthHandler.ResetPasswordRequest)
			r.Post("/reset_password/{token}", h.AuthHandler.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/change_password", h.AuthHandler.ChangePassword)
			})
		})
		r.Get("/users/exists/{username}", h.UserHandler.Exists)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/discoveries", func(r chi.Router) {
				r.Post("/scan", h.DiscoveryHandler.Scan)
				r.Get("/history", h.DiscoveryHandler.GetHistory)
				r.Get("/stats", h.DiscoveryHandler.GetStats)
				r.Get("/undiscovered", h.DiscoveryHandler.GetUndiscovered)
				r.Get("/popular", h.DiscoveryHandler.GetPopular)
			})
			r.Route("/leaderboard", func(r chi.Router) {
				r.Get("/global", h.LeaderboardHandler.GetGlobal)
				r.Get("/weekly", h.LeaderboardHandler.GetWeekly)
				r.Get("/category/{category}", h.LeaderboardHandler.GetCategory)
				r.Get("/my_ranking", h.LeaderboardHandler.GetMyRanking)
				r.Get("/nearby", h.LeaderboardHandler.GetNearby)
			})
			r.Route("/points", func(r chi.Router) {
				r.Get("/summary", h.PointsHandler.GetSummary)
				r.Get("/history", h.PointsHandler.GetHistory)
				r.Get("/breakdown", h.PointsHandler.GetBreakdown)
				r.Post("/deduct", h.PointsHandler.Deduct)
			})
			r.Route("/skins", func(r chi.Router) {
				r.Get("/available", h.SkinHandler.GetAvailable)
				r.Get("/owned", h.SkinHandler.GetOwned)
				r.Get("/stats", h.SkinHandler.GetStats)
				r.Post("/{skinID}/purchase", h.SkinHandler.Purchase)
				r.Post("/{skinID}/equip", h.SkinHandler.Equip)
			})
			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", h.UserHandler.GetProfile)
				r.Patch("/update_display_name", h.UserHandler.UpdateDisplayName)
				r.Post("/deactivate", h.UserHandler.Deactivate)
				r.Post("/reactivate", h.UserHandler.Reactivate)
				r.Get("/by_username/{username}", h.UserHandler.GetByUsername)
			})
		})
	})

	return r
}

func root(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"service": "oceanscan",
		"message": "Scan debris, clean oceans, climb the leaderboard",
	})
}

func health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
