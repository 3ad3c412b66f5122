package service

import (
	"github.com/cybercyclones/oceanscan/internal/classifier"
	"github.com/cybercyclones/oceanscan/internal/handlers/auth"
	"github.com/cybercyclones/oceanscan/internal/handlers/discoveries"
	"github.com/cybercyclones/oceanscan/internal/handlers/leaderboard"
	"github.com/cybercyclones/oceanscan/internal/handlers/points"
	"github.com/cybercyclones/oceanscan/internal/handlers/skins"
	"github.com/cybercyclones/oceanscan/internal/handlers/users"
	"github.com/cybercyclones/oceanscan/internal/pg"

	pkgauth "github.com/cybercyclones/oceanscan/pkg/auth"

	"github.com/cybercyclones/oceanscan/internal/repo"
	authservice "github.com/cybercyclones/oceanscan/internal/service/authservice"
	discoveryservice "github.com/cybercyclones/oceanscan/internal/service/discoveryservice"
	leaderboardservice "github.com/cybercyclones/oceanscan/internal/service/leaderboardservice"
	pointsservice "github.com/cybercyclones/oceanscan/internal/service/pointsservice"
	skinservice "github.com/cybercyclones/oceanscan/internal/service/skinservice"
	userservice "github.com/cybercyclones/oceanscan/internal/service/userservice"
)

type Services struct {
	AuthService        auth.Service
	DiscoveryService   discoveries.Service
	LeaderboardService leaderboard.Service
	PointsService      points.Service
	SkinService        skins.Service
	UserService        users.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cls classifier.Classifier) *Services {
	pointsService := pointsservice.New(repo.UserRepo, repo.DiscoveryRepo, txManager)
	discoveryService := discoveryservice.New(repo.UserRepo, repo.ItemRepo, repo.DiscoveryRepo, pointsService, cls)
	skinService := skinservice.New(repo.UserRepo, repo.SkinRepo, pointsService, txManager)
	leaderboardService := leaderboardservice.New(repo.UserRepo, repo.LeaderboardRepo, repo.DiscoveryRepo)
	userService := userservice.New(repo.UserRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		DiscoveryService:   discoveryService,
		LeaderboardService: leaderboardService,
		PointsService:      pointsService,
		SkinService:        skinService,
		UserService:        userService,
	}
}
