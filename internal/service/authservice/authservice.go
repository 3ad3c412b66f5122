package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/pkg/auth"
	"github.com/cybercyclones/oceanscan/pkg/validate"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID int) error
}

type Service struct {
	userRepo    UserRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

const (
	tokenTTL      = 24 * time.Hour
	resetTokenTTL = 2 * time.Hour
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidResetToken  = errors.New("invalid reset token")
)

// Register creates an account and returns it with a fresh bearer token.
func (s *Service) Register(ctx context.Context, username, email, password string, displayName *string) (*domain.User, string, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		zap.L().Info("username already taken", zap.String("username", username))
		return nil, "", ErrUsernameTaken
	}

	existing, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	if err := validate.Password(password); err != nil {
		return nil, "", err
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, "", err
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, "", err
	}

	token, err := s.jwtService.GenerateJWT(user.ID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, "", err
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return user, token, nil
}

// Login authenticates the user and returns a 24h bearer token. Deactivated
// accounts are rejected after the credential check.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrAccountDeactivated
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateJWT(user.ID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, "", err
	}

	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, token, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !s.hashService.ComparePassword(user.PasswordHash, oldPassword) {
		return ErrWrongPassword
	}
	if err := validate.Password(newPassword); err != nil {
		return err
	}

	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, hashedPassword)
}

// GenerateResetToken issues a short-lived purpose-scoped token. Unknown
// emails yield an empty token so the endpoint never reveals whether an
// address is registered.
func (s *Service) GenerateResetToken(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}

	return s.jwtService.GenerateResetToken(user.ID, time.Now().Add(resetTokenTTL))
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.jwtService.ValidateResetToken(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	if err := validate.Password(newPassword); err != nil {
		return err
	}

	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, claims.UserID, hashedPassword)
}
