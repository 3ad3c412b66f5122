package skinservice

import (
	"context"
	"errors"
	"testing"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockSkinRepo, *MockPointsService, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	skinRepo := NewMockSkinRepo(ctrl)
	points := NewMockPointsService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(userRepo, skinRepo, points, txManager)
	defer ctrl.Finish()
	return service, userRepo, skinRepo, points, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestPurchase(t *testing.T) {
	service, userRepo, skinRepo, points, txManager := NewMock(t)

	skin := &domain.Skin{
		ID:          3,
		Name:        "Coral Guardian",
		PricePoints: 200,
		Rarity:      domain.RarityRare,
		Available:   true,
	}

	tests := []struct {
		name           string
		userID         int
		skinID         int
		prepareMock    func()
		expectedResult *PurchaseResult
		expectedError  error
	}{
		{
			name:   "Successful purchase",
			userID: 1,
			skinID: 3,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, PointsBalance: 500}, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 3).Return(skin, nil)
				skinRepo.EXPECT().OwnershipExists(gomock.Any(), 1, 3).Return(false, nil)
				passThroughTx(txManager)
				points.EXPECT().Deduct(gomock.Any(), 1, 200).Return(300, nil)
				skinRepo.EXPECT().CreateOwnership(gomock.Any(), &domain.UserSkin{
					UserID:          1,
					SkinID:          3,
					AcquisitionType: domain.AcquisitionPurchase,
				}).Return(&domain.UserSkin{ID: 1}, nil)
			},
			expectedResult: &PurchaseResult{
				SkinName:    "Coral Guardian",
				PointsSpent: 200,
				NewBalance:  300,
				Rarity:      domain.RarityRare,
			},
			expectedError: nil,
		},
		{
			name:   "User not found",
			userID: 42,
			skinID: 3,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Skin not found",
			userID: 1,
			skinID: 99,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, PointsBalance: 500}, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrSkinNotFound,
		},
		{
			name:   "Skin unavailable",
			userID: 1,
			skinID: 4,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, PointsBalance: 500}, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 4).Return(&domain.Skin{
					ID:          4,
					Name:        "Retired Skin",
					PricePoints: 100,
					Available:   false,
				}, nil)
			},
			expectedError: ErrSkinUnavailable,
		},
		{
			name:   "Already owned",
			userID: 1,
			skinID: 3,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, PointsBalance: 500}, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 3).Return(skin, nil)
				skinRepo.EXPECT().OwnershipExists(gomock.Any(), 1, 3).Return(true, nil)
			},
			expectedError: ErrAlreadyOwned,
		},
		{
			name:   "Insufficient balance",
			userID: 1,
			skinID: 3,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, PointsBalance: 50}, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 3).Return(skin, nil)
				skinRepo.EXPECT().OwnershipExists(gomock.Any(), 1, 3).Return(false, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:   "Concurrent duplicate rolls back with the deduction",
			userID: 1,
			skinID: 3,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, PointsBalance: 500}, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 3).Return(skin, nil)
				skinRepo.EXPECT().OwnershipExists(gomock.Any(), 1, 3).Return(false, nil)
				passThroughTx(txManager)
				points.EXPECT().Deduct(gomock.Any(), 1, 200).Return(300, nil)
				skinRepo.EXPECT().CreateOwnership(gomock.Any(), gomock.Any()).
					Return(nil, &pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrAlreadyOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.Purchase(context.Background(), tt.userID, tt.skinID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestEquip(t *testing.T) {
	service, userRepo, skinRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		skinID        int
		prepareMock   func()
		expectedName  string
		expectedError error
	}{
		{
			name:   "Equip owned skin",
			userID: 1,
			skinID: 3,
			prepareMock: func() {
				skinRepo.EXPECT().OwnershipExists(gomock.Any(), 1, 3).Return(true, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Skin{
					ID:     3,
					Name:   "Coral Guardian",
					Rarity: domain.RarityRare,
				}, nil)
				userRepo.EXPECT().UpdateActiveSkin(gomock.Any(), 1, 3).Return(nil)
			},
			expectedName:  "Coral Guardian",
			expectedError: nil,
		},
		{
			name:   "Skin not owned",
			userID: 1,
			skinID: 5,
			prepareMock: func() {
				skinRepo.EXPECT().OwnershipExists(gomock.Any(), 1, 5).Return(false, nil)
			},
			expectedError: ErrSkinNotOwned,
		},
		{
			name:   "Error updating active skin",
			userID: 1,
			skinID: 3,
			prepareMock: func() {
				skinRepo.EXPECT().OwnershipExists(gomock.Any(), 1, 3).Return(true, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Skin{ID: 3, Name: "Coral Guardian"}, nil)
				userRepo.EXPECT().UpdateActiveSkin(gomock.Any(), 1, 3).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.Equip(context.Background(), tt.userID, tt.skinID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedName, result.SkinName)
				assert.False(t, result.EquippedAt.IsZero())
			}
		})
	}
}

func TestAward(t *testing.T) {
	service, userRepo, skinRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		skinID        int
		reason        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Award for achievement",
			userID: 1,
			skinID: 6,
			reason: domain.AcquisitionAchievement,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 6).Return(&domain.Skin{
					ID:     6,
					Name:   "Deep Diver",
					Rarity: domain.RarityEpic,
				}, nil)
				skinRepo.EXPECT().OwnershipExists(gomock.Any(), 1, 6).Return(false, nil)
				skinRepo.EXPECT().CreateOwnership(gomock.Any(), &domain.UserSkin{
					UserID:          1,
					SkinID:          6,
					AcquisitionType: domain.AcquisitionAchievement,
				}).Return(&domain.UserSkin{ID: 1}, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Already owned",
			userID: 1,
			skinID: 6,
			reason: domain.AcquisitionAchievement,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				skinRepo.EXPECT().FindByID(gomock.Any(), 6).Return(&domain.Skin{ID: 6, Name: "Deep Diver"}, nil)
				skinRepo.EXPECT().OwnershipExists(gomock.Any(), 1, 6).Return(true, nil)
			},
			expectedError: ErrAlreadyOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.Award(context.Background(), tt.userID, tt.skinID, tt.reason)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.reason, result.Reason)
			}
		})
	}
}

func TestGetOwned(t *testing.T) {
	service, userRepo, skinRepo, _, _ := NewMock(t)

	equippedID := 3

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedViews []OwnedSkinView
		expectedError error
	}{
		{
			name:   "Equipped flag follows active skin",
			userID: 1,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID:           1,
					ActiveSkinID: &equippedID,
				}, nil)
				skinRepo.EXPECT().FindOwnedByUser(gomock.Any(), 1).Return([]domain.OwnedSkin{
					{Skin: domain.Skin{ID: 3, Name: "Coral Guardian"}},
					{Skin: domain.Skin{ID: 5, Name: "Kelp Forest"}},
				}, nil)
			},
			expectedViews: []OwnedSkinView{
				{OwnedSkin: domain.OwnedSkin{Skin: domain.Skin{ID: 3, Name: "Coral Guardian"}}, IsEquipped: true},
				{OwnedSkin: domain.OwnedSkin{Skin: domain.Skin{ID: 5, Name: "Kelp Forest"}}, IsEquipped: false},
			},
			expectedError: nil,
		},
		{
			name:   "User not found",
			userID: 42,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)
			},
			expectedViews: nil,
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			views, err := service.GetOwned(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedViews, views)
			}
		})
	}
}

func TestGetStatistics(t *testing.T) {
	service, userRepo, skinRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedStats *Statistics
		expectedError error
	}{
		{
			name:   "Collection statistics",
			userID: 1,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				skinRepo.EXPECT().CountOwned(gomock.Any(), 1).Return(4, nil)
				skinRepo.EXPECT().CountsByRarity(gomock.Any(), 1).Return(map[string]int{
					domain.RarityCommon: 2,
					domain.RarityRare:   2,
				}, nil)
				skinRepo.EXPECT().CountsByAcquisition(gomock.Any(), 1).Return(map[string]int{
					domain.AcquisitionPurchase:    3,
					domain.AcquisitionAchievement: 1,
				}, nil)
				skinRepo.EXPECT().TotalPointsSpent(gomock.Any(), 1).Return(650, nil)
			},
			expectedStats: &Statistics{
				TotalSkins: 4,
				RarityBreakdown: map[string]int{
					domain.RarityCommon: 2,
					domain.RarityRare:   2,
				},
				AcquisitionBreakdown: map[string]int{
					domain.AcquisitionPurchase:    3,
					domain.AcquisitionAchievement: 1,
				},
				TotalPointsSpent: 650,
			},
			expectedError: nil,
		},
		{
			name:   "User not found",
			userID: 42,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)
			},
			expectedStats: nil,
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			stats, err := service.GetStatistics(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStats, stats)
			}
		})
	}
}
