package discoveryservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/cybercyclones/oceanscan/internal/classifier"
	"github.com/cybercyclones/oceanscan/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type ItemRepo interface {
	FindByName(ctx context.Context, name string) (*domain.Item, error)
	FindUndiscoveredByUser(ctx context.Context, userID int) ([]domain.Item, error)
}

type DiscoveryRepo interface {
	FindByUser(ctx context.Context, userID int) ([]domain.DiscoveryDetail, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	CountByUserSince(ctx context.Context, userID int, since time.Time) (int, error)
	SumPointsByUser(ctx context.Context, userID int) (int, error)
	CountsByCategory(ctx context.Context, userID int) (map[string]int, error)
	CountsByRarity(ctx context.Context, userID int) (map[string]int, error)
	TotalDecompositionDays(ctx context.Context, userID int) (int, error)
	FindPopular(ctx context.Context, limit int) ([]domain.PopularDiscovery, error)
}

type PointsService interface {
	AwardForDiscovery(ctx context.Context, userID int, item *domain.Item) (int, int, error)
}

type Service struct {
	userRepo      UserRepo
	itemRepo      ItemRepo
	discoveryRepo DiscoveryRepo
	points        PointsService
	classifier    classifier.Classifier
}

func New(userRepo UserRepo, itemRepo ItemRepo, discoveryRepo DiscoveryRepo, points PointsService, classifier classifier.Classifier) *Service {
	return &Service{
		userRepo:      userRepo,
		itemRepo:      itemRepo,
		discoveryRepo: discoveryRepo,
		points:        points,
		classifier:    classifier,
	}
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrItemNotRecognized = errors.New("item not recognized in our database")
)

const popularLimit = 10

type ScanResult struct {
	ItemName            string
	Category            string
	PointsAwarded       int
	NewTotalPoints      int
	EnvironmentalImpact string
	DecompositionTime   int
	ThreatLevel         int
}

// ProcessScan runs the discovery flow: classify the photo, match the label
// against the catalog, and award points exactly once per (user, item) pair.
// The award happens before the scan result is returned; duplicates and
// unknown labels fail without any state change.
func (s *Service) ProcessScan(ctx context.Context, userID int, encodedImage string) (*ScanResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	label, err := s.classifier.Classify(ctx, encodedImage)
	if err != nil {
		zap.L().Error("classification failed", zap.Error(err))
		return nil, err
	}

	item, err := s.itemRepo.FindByName(ctx, label)
	if err != nil {
		return nil, err
	}
	if item == nil {
		zap.L().Info("classified label not in catalog", zap.String("label", label))
		return nil, ErrItemNotRecognized
	}

	pointsAwarded, newTotal, err := s.points.AwardForDiscovery(ctx, userID, item)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		ItemName:            item.Name,
		Category:            item.Category,
		PointsAwarded:       pointsAwarded,
		NewTotalPoints:      newTotal,
		EnvironmentalImpact: item.EnvironmentalImpact,
		DecompositionTime:   item.AverageDecompositionTime,
		ThreatLevel:         item.ThreatLevel,
	}, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.DiscoveryDetail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.discoveryRepo.FindByUser(ctx, userID)
}

type Statistics struct {
	TotalDiscoveries         int
	Categories               map[string]int
	Rarities                 map[string]int
	TotalDecompositionYears  float64
	DiscoveriesLastWeek      int
	TotalPointsFromDiscovery int
}

func (s *Service) GetStatistics(ctx context.Context, userID int) (*Statistics, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	total, err := s.discoveryRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := s.discoveryRepo.CountsByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}
	rarities, err := s.discoveryRepo.CountsByRarity(ctx, userID)
	if err != nil {
		return nil, err
	}
	decompositionDays, err := s.discoveryRepo.TotalDecompositionDays(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.discoveryRepo.CountByUserSince(ctx, userID, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	pointsTotal, err := s.discoveryRepo.SumPointsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		TotalDiscoveries:         total,
		Categories:               categories,
		Rarities:                 rarities,
		TotalDecompositionYears:  math.Round(float64(decompositionDays)/365*100) / 100,
		DiscoveriesLastWeek:      recent,
		TotalPointsFromDiscovery: pointsTotal,
	}, nil
}

func (s *Service) GetUndiscovered(ctx context.Context, userID int) ([]domain.Item, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.itemRepo.FindUndiscoveredByUser(ctx, userID)
}

func (s *Service) GetPopular(ctx context.Context) ([]domain.PopularDiscovery, error) {
	return s.discoveryRepo.FindPopular(ctx, popularLimit)
}

func (s *Service) requireUser(ctx context.Context, userID int) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
