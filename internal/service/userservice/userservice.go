package userservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, userID int, displayName string) (*domain.User, error)
	SetActive(ctx context.Context, userID int, active bool) error
	GetRankPosition(ctx context.Context, userID int) (int, error)
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmptyDisplayName = errors.New("display name cannot be empty")
)

type Profile struct {
	Username            string
	DisplayName         *string
	Rank                int
	RankTitle           string
	PointsBalance       int
	TotalPointsEarned   int
	LeaderboardPosition int
	ActiveSkinID        *int
	MemberSince         time.Time
	LastLogin           *time.Time
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*Profile, error) {
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

	return &Profile{
		Username:            user.Username,
		DisplayName:         user.DisplayName,
		Rank:                user.Rank,
		RankTitle:           domain.RankTitle(user.Rank),
		PointsBalance:       user.PointsBalance,
		TotalPointsEarned:   user.TotalPointsEarned,
		LeaderboardPosition: position,
		ActiveSkinID:        user.ActiveSkinID,
		MemberSince:         user.CreatedAt,
		LastLogin:           user.LastLoginAt,
	}, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}

func (s *Service) UpdateDisplayName(ctx context.Context, userID int, displayName string) (*domain.User, error) {
	trimmed := strings.TrimSpace(displayName)
	if trimmed == "" {
		return nil, ErrEmptyDisplayName
	}

	user, err := s.userRepo.UpdateDisplayName(ctx, userID, trimmed)
	if err != nil {
		zap.L().Error("failed to update display name", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) Deactivate(ctx context.Context, userID int) error {
	return s.setActive(ctx, userID, false)
}

func (s *Service) Reactivate(ctx context.Context, userID int) error {
	return s.setActive(ctx, userID, true)
}

func (s *Service) setActive(ctx context.Context, userID int, active bool) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.SetActive(ctx, userID, active)
}
