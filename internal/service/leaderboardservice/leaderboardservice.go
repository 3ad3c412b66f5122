package leaderboardservice

import (
	"context"
	"errors"
	"time"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	GetRankPosition(ctx context.Context, userID int) (int, error)
}

type LeaderboardRepo interface {
	FindGlobalTop(ctx context.Context, limit int) ([]domain.RankedUser, error)
	FindNearby(ctx context.Context, lo, hi int) ([]domain.RankedUser, error)
	FindWeeklyTop(ctx context.Context, since time.Time, limit int) ([]domain.WeeklyScore, error)
	FindCategoryTop(ctx context.Context, category string, since time.Time, limit int) ([]domain.CategoryScore, error)
	SumWeeklyPoints(ctx context.Context, userID int, since time.Time) (int, error)
	GetCategoryPosition(ctx context.Context, userID int, category string) (int, error)
}

type DiscoveryRepo interface {
	CountByUser(ctx context.Context, userID int) (int, error)
}

type Service struct {
	userRepo        UserRepo
	leaderboardRepo LeaderboardRepo
	discoveryRepo   DiscoveryRepo
}

func New(userRepo UserRepo, leaderboardRepo LeaderboardRepo, discoveryRepo DiscoveryRepo) *Service {
	return &Service{
		userRepo:        userRepo,
		leaderboardRepo: leaderboardRepo,
		discoveryRepo:   discoveryRepo,
	}
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidCategory = errors.New("invalid item category")
)

const (
	DefaultLimit  = 10
	DefaultWindow = 2

	weeklyWindow = 7 * 24 * time.Hour
)

func (s *Service) GetGlobal(ctx context.Context, limit int) ([]domain.RankedUser, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.leaderboardRepo.FindGlobalTop(ctx, limit)
}

// GetWeekly ranks users by points earned in the trailing seven days. The
// position is the 1-based result-set order, not a tie-aware rank; ties keep
// the query's stable order.
func (s *Service) GetWeekly(ctx context.Context, limit int) ([]domain.WeeklyScore, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	since := time.Now().Add(-weeklyWindow)
	return s.leaderboardRepo.FindWeeklyTop(ctx, since, limit)
}

func (s *Service) GetCategory(ctx context.Context, category string, limit int) ([]domain.CategoryScore, error) {
	if !validCategory(category) {
		return nil, ErrInvalidCategory
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	since := time.Now().Add(-weeklyWindow)
	return s.leaderboardRepo.FindCategoryTop(ctx, category, since, limit)
}

func validCategory(category string) bool {
	for _, c := range domain.Categories {
		if c == category {
			return true
		}
	}
	return false
}

type RankingDetails struct {
	Username         string
	DisplayName      *string
	GlobalRank       int
	TotalPoints      int
	WeeklyPoints     int
	RankTitle        string
	CategoryRankings map[string]int
	TotalDiscoveries int
}

// GetMyRanking assembles the user's full ranking picture. The independent
// aggregate queries run concurrently.
func (s *Service) GetMyRanking(ctx context.Context, userID int) (*RankingDetails, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	details := &RankingDetails{
		Username:         user.Username,
		DisplayName:      user.DisplayName,
		TotalPoints:      user.TotalPointsEarned,
		RankTitle:        domain.RankTitle(user.Rank),
		CategoryRankings: make(map[string]int, len(domain.Categories)),
	}

	since := time.Now().Add(-weeklyWindow)
	categoryPositions := make([]int, len(domain.Categories))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		position, err := s.userRepo.GetRankPosition(gCtx, userID)
		if err != nil {
			return err
		}
		details.GlobalRank = position
		return nil
	})
	g.Go(func() error {
		weekly, err := s.leaderboardRepo.SumWeeklyPoints(gCtx, userID, since)
		if err != nil {
			return err
		}
		details.WeeklyPoints = weekly
		return nil
	})
	g.Go(func() error {
		count, err := s.discoveryRepo.CountByUser(gCtx, userID)
		if err != nil {
			return err
		}
		details.TotalDiscoveries = count
		return nil
	})
	for i, category := range domain.Categories {
		i, category := i, category
		g.Go(func() error {
			position, err := s.leaderboardRepo.GetCategoryPosition(gCtx, userID, category)
			if err != nil {
				return err
			}
			categoryPositions[i] = position
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to assemble ranking details", zap.Error(err))
		return nil, err
	}

	for i, category := range domain.Categories {
		details.CategoryRankings[category] = categoryPositions[i]
	}
	return details, nil
}

type NearbyEntry struct {
	domain.RankedUser
	IsCurrentUser bool
}

// GetNearby returns the active users whose global position lies within the
// window around the requesting user's own position.
func (s *Service) GetNearby(ctx context.Context, userID, window int) ([]NearbyEntry, error) {
	if window <= 0 {
		window = DefaultWindow
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	position, err := s.userRepo.GetRankPosition(ctx, userID)
	if err != nil {
		return nil, err
	}

	lo := position - window
	if lo < 1 {
		lo = 1
	}
	ranked, err := s.leaderboardRepo.FindNearby(ctx, lo, position+window)
	if err != nil {
		return nil, err
	}

	entries := make([]NearbyEntry, len(ranked))
	for i, r := range ranked {
		entries[i] = NearbyEntry{
			RankedUser:    r,
			IsCurrentUser: r.UserID == userID,
		}
	}
	return entries, nil
}
