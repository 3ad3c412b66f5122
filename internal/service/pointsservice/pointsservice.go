package pointsservice

import (
	"context"
	"errors"
	"time"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	UpdatePoints(ctx context.Context, userID, pointsBalance, totalPoints int) (*domain.User, error)
	UpdateRank(ctx context.Context, userID, rank int) error
	GetRankPosition(ctx context.Context, userID int) (int, error)
}

type DiscoveryRepo interface {
	Exists(ctx context.Context, userID, itemID int) (bool, error)
	Create(ctx context.Context, discovery *domain.UserDiscovery) (*domain.UserDiscovery, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	FindByUserSince(ctx context.Context, userID int, since time.Time) ([]domain.DiscoveryDetail, error)
	SumPointsByUser(ctx context.Context, userID int) (int, error)
	PointsByCategory(ctx context.Context, userID int) (map[string]int, error)
	PointsByRarity(ctx context.Context, userID int) (map[string]int, error)
}

type Service struct {
	userRepo      UserRepo
	discoveryRepo DiscoveryRepo
	txManager     pg.TXManager
}

func New(userRepo UserRepo, discoveryRepo DiscoveryRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:      userRepo,
		discoveryRepo: discoveryRepo,
		txManager:     txManager,
	}
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAlreadyDiscovered   = errors.New("item already discovered by user")
	ErrInvalidAmount       = errors.New("points to deduct must be positive")
	ErrInsufficientBalance = errors.New("insufficient points balance")
	ErrInvalidTimeframe    = errors.New("invalid timeframe: must be 'week', 'month' or 'year'")
)

var rarityMultipliers = map[string]float64{
	domain.RarityCommon:   1,
	domain.RarityUncommon: 1.5,
	domain.RarityRare:     2,
	domain.RarityEpic:     3,
}

const threatBonusPerLevel = 10

// CalculatePoints computes the award for discovering an item: the base value
// scaled by the rarity multiplier, truncated toward zero, plus a bonus per
// threat level above one.
func CalculatePoints(item *domain.Item) int {
	points := int(float64(item.PointValue) * rarityMultipliers[item.Rarity])
	points += (item.ThreatLevel - 1) * threatBonusPerLevel
	return points
}

// RankFor maps a lifetime total onto the rank tier. Thresholds: 100 Explorer,
// 500 Guardian, 1000 Ocean Protector.
func RankFor(totalPointsEarned int) int {
	switch {
	case totalPointsEarned >= 1000:
		return 3
	case totalPointsEarned >= 500:
		return 2
	case totalPointsEarned >= 100:
		return 1
	default:
		return 0
	}
}

// AwardForDiscovery credits the user for a first-time discovery and records
// the discovery fact carrying the awarded snapshot. The whole flow runs in a
// single transaction; a concurrent duplicate loses on the unique constraint
// and surfaces as ErrAlreadyDiscovered.
func (s *Service) AwardForDiscovery(ctx context.Context, userID int, item *domain.Item) (int, int, error) {
	var points, newTotal int

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		discovered, err := s.discoveryRepo.Exists(ctx, userID, item.ID)
		if err != nil {
			return err
		}
		if discovered {
			return ErrAlreadyDiscovered
		}

		points = CalculatePoints(item)
		newTotal = user.TotalPointsEarned + points

		updated, err := s.userRepo.UpdatePoints(ctx, userID, user.PointsBalance+points, newTotal)
		if err != nil {
			return err
		}

		if newRank := RankFor(updated.TotalPointsEarned); newRank != updated.Rank {
			if err := s.userRepo.UpdateRank(ctx, userID, newRank); err != nil {
				return err
			}
		}

		_, err = s.discoveryRepo.Create(ctx, &domain.UserDiscovery{
			UserID:        userID,
			ItemID:        item.ID,
			PointsAwarded: points,
		})
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrAlreadyDiscovered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	zap.L().Info("points awarded for discovery",
		zap.Int("user_id", userID),
		zap.Int("item_id", item.ID),
		zap.Int("points", points),
	)
	return points, newTotal, nil
}

// Deduct spends points from the balance. The lifetime total is untouched; the
// read and write share one transaction so concurrent purchases cannot spend
// the same balance twice.
func (s *Service) Deduct(ctx context.Context, userID, points int) (int, error) {
	var newBalance int

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		if points < 0 {
			return ErrInvalidAmount
		}
		if user.PointsBalance < points {
			return ErrInsufficientBalance
		}

		newBalance = user.PointsBalance - points
		_, err = s.userRepo.UpdatePoints(ctx, userID, newBalance, user.TotalPointsEarned)
		return err
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

type Summary struct {
	CurrentBalance      int
	TotalEarned         int
	CurrentRank         int
	RankTitle           string
	LeaderboardPosition int
	NextRank            int
	PointsToNextRank    *int
	DiscoveriesCount    int
}

var nextRankThresholds = map[int]int{
	0: 100,
	1: 500,
	2: 1000,
}

func (s *Service) GetSummary(ctx context.Context, userID int) (*Summary, error) {
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
	count, err := s.discoveryRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		CurrentBalance:      user.PointsBalance,
		TotalEarned:         user.TotalPointsEarned,
		CurrentRank:         user.Rank,
		RankTitle:           domain.RankTitle(user.Rank),
		LeaderboardPosition: position,
		NextRank:            user.Rank,
		DiscoveriesCount:    count,
	}
	if threshold, ok := nextRankThresholds[user.Rank]; ok {
		needed := threshold - user.TotalPointsEarned
		summary.NextRank = user.Rank + 1
		summary.PointsToNextRank = &needed
	}
	return summary, nil
}

// GetHistory lists the user's point-earning events inside the timeframe,
// newest first.
func (s *Service) GetHistory(ctx context.Context, userID int, timeframe string) ([]domain.DiscoveryDetail, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	var since time.Time
	switch timeframe {
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, -1, 0)
	case "year":
		since = now.AddDate(-1, 0, 0)
	default:
		return nil, ErrInvalidTimeframe
	}

	return s.discoveryRepo.FindByUserSince(ctx, userID, since)
}

type Breakdown struct {
	TotalEarned     int
	FromDiscoveries int
	ByCategory      map[string]int
	ByRarity        map[string]int
}

func (s *Service) GetBreakdown(ctx context.Context, userID int) (*Breakdown, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fromDiscoveries, err := s.discoveryRepo.SumPointsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.discoveryRepo.PointsByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}
	byRarity, err := s.discoveryRepo.PointsByRarity(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Breakdown{
		TotalEarned:     user.TotalPointsEarned,
		FromDiscoveries: fromDiscoveries,
		ByCategory:      byCategory,
		ByRarity:        byRarity,
	}, nil
}
