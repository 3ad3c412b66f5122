package skinservice

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
	UpdateActiveSkin(ctx context.Context, userID, skinID int) error
}

type SkinRepo interface {
	FindByID(ctx context.Context, skinID int) (*domain.Skin, error)
	FindAvailableNotOwned(ctx context.Context, userID int) ([]domain.Skin, error)
	FindOwnedByUser(ctx context.Context, userID int) ([]domain.OwnedSkin, error)
	OwnershipExists(ctx context.Context, userID, skinID int) (bool, error)
	CreateOwnership(ctx context.Context, userSkin *domain.UserSkin) (*domain.UserSkin, error)
	CountOwned(ctx context.Context, userID int) (int, error)
	CountsByRarity(ctx context.Context, userID int) (map[string]int, error)
	CountsByAcquisition(ctx context.Context, userID int) (map[string]int, error)
	TotalPointsSpent(ctx context.Context, userID int) (int, error)
}

type PointsService interface {
	Deduct(ctx context.Context, userID, points int) (int, error)
}

type Service struct {
	userRepo  UserRepo
	skinRepo  SkinRepo
	points    PointsService
	txManager pg.TXManager
}

func New(userRepo UserRepo, skinRepo SkinRepo, points PointsService, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:  userRepo,
		skinRepo:  skinRepo,
		points:    points,
		txManager: txManager,
	}
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrSkinNotFound        = errors.New("skin not found")
	ErrSkinUnavailable     = errors.New("this skin is not available for purchase")
	ErrAlreadyOwned        = errors.New("you already own this skin")
	ErrInsufficientBalance = errors.New("insufficient points balance")
	ErrSkinNotOwned        = errors.New("you don't own this skin")
)

type PurchaseResult struct {
	SkinName    string
	PointsSpent int
	NewBalance  int
	Rarity      string
}

// Purchase validates availability, ownership and balance, then deducts points
// and records ownership as one atomic unit. A concurrent duplicate purchase
// loses on the unique constraint and the deduction rolls back with it.
func (s *Service) Purchase(ctx context.Context, userID, skinID int) (*PurchaseResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	skin, err := s.skinRepo.FindByID(ctx, skinID)
	if err != nil {
		return nil, err
	}
	if skin == nil {
		return nil, ErrSkinNotFound
	}
	if !skin.Available {
		return nil, ErrSkinUnavailable
	}

	owned, err := s.skinRepo.OwnershipExists(ctx, userID, skinID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, ErrAlreadyOwned
	}
	if user.PointsBalance < skin.PricePoints {
		return nil, ErrInsufficientBalance
	}

	var newBalance int
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newBalance, err = s.points.Deduct(ctx, userID, skin.PricePoints)
		if err != nil {
			return err
		}

		_, err = s.skinRepo.CreateOwnership(ctx, &domain.UserSkin{
			UserID:          userID,
			SkinID:          skinID,
			AcquisitionType: domain.AcquisitionPurchase,
		})
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrAlreadyOwned
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("skin purchased",
		zap.Int("user_id", userID),
		zap.Int("skin_id", skinID),
		zap.Int("price", skin.PricePoints),
	)
	return &PurchaseResult{
		SkinName:    skin.Name,
		PointsSpent: skin.PricePoints,
		NewBalance:  newBalance,
		Rarity:      skin.Rarity,
	}, nil
}

type EquipResult struct {
	SkinName   string
	Rarity     string
	EquippedAt time.Time
}

// Equip sets the user's active skin. Ownership is required; equipping is free.
func (s *Service) Equip(ctx context.Context, userID, skinID int) (*EquipResult, error) {
	owned, err := s.skinRepo.OwnershipExists(ctx, userID, skinID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrSkinNotOwned
	}

	skin, err := s.skinRepo.FindByID(ctx, skinID)
	if err != nil {
		return nil, err
	}
	if skin == nil {
		return nil, ErrSkinNotFound
	}

	if err := s.userRepo.UpdateActiveSkin(ctx, userID, skinID); err != nil {
		return nil, err
	}

	return &EquipResult{
		SkinName:   skin.Name,
		Rarity:     skin.Rarity,
		EquippedAt: time.Now(),
	}, nil
}

type AwardResult struct {
	SkinName  string
	Rarity    string
	AwardedAt time.Time
	Reason    string
}

// Award grants a skin without deduction, for achievements and special events.
func (s *Service) Award(ctx context.Context, userID, skinID int, reason string) (*AwardResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	skin, err := s.skinRepo.FindByID(ctx, skinID)
	if err != nil {
		return nil, err
	}
	if skin == nil {
		return nil, ErrSkinNotFound
	}

	owned, err := s.skinRepo.OwnershipExists(ctx, userID, skinID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, ErrAlreadyOwned
	}

	userSkin, err := s.skinRepo.CreateOwnership(ctx, &domain.UserSkin{
		UserID:          userID,
		SkinID:          skinID,
		AcquisitionType: reason,
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrAlreadyOwned
		}
		return nil, err
	}

	return &AwardResult{
		SkinName:  skin.Name,
		Rarity:    skin.Rarity,
		AwardedAt: userSkin.AcquiredAt,
		Reason:    reason,
	}, nil
}

func (s *Service) GetAvailable(ctx context.Context, userID int) ([]domain.Skin, error) {
	return s.skinRepo.FindAvailableNotOwned(ctx, userID)
}

type OwnedSkinView struct {
	domain.OwnedSkin
	IsEquipped bool
}

func (s *Service) GetOwned(ctx context.Context, userID int) ([]OwnedSkinView, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	owned, err := s.skinRepo.FindOwnedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]OwnedSkinView, len(owned))
	for i, o := range owned {
		views[i] = OwnedSkinView{
			OwnedSkin:  o,
			IsEquipped: user.ActiveSkinID != nil && *user.ActiveSkinID == o.ID,
		}
	}
	return views, nil
}

type Statistics struct {
	TotalSkins           int
	RarityBreakdown      map[string]int
	AcquisitionBreakdown map[string]int
	TotalPointsSpent     int
}

func (s *Service) GetStatistics(ctx context.Context, userID int) (*Statistics, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	total, err := s.skinRepo.CountOwned(ctx, userID)
	if err != nil {
		return nil, err
	}
	byRarity, err := s.skinRepo.CountsByRarity(ctx, userID)
	if err != nil {
		return nil, err
	}
	byAcquisition, err := s.skinRepo.CountsByAcquisition(ctx, userID)
	if err != nil {
		return nil, err
	}
	spent, err := s.skinRepo.TotalPointsSpent(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		TotalSkins:           total,
		RarityBreakdown:      byRarity,
		AcquisitionBreakdown: byAcquisition,
		TotalPointsSpent:     spent,
	}, nil
}
