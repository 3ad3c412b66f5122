package userrepo

import (
	"context"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, username, email, password_hash, display_name, points_balance,
		total_points_earned, rank, active_skin_id, is_admin, is_active, created_at, last_login_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pg.RowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.DisplayName,
		&user.PointsBalance, &user.TotalPointsEarned, &user.Rank, &user.ActiveSkinID,
		&user.IsAdmin, &user.IsActive, &user.CreatedAt, &user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by username", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, display_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.DisplayName).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	user.IsActive = true
	return user, nil
}

// UpdatePoints sets both the spendable balance and the lifetime total and
// returns the updated user.
func (r *Repository) UpdatePoints(ctx context.Context, userID, pointsBalance, totalPoints int) (*domain.User, error) {
	query := `
		UPDATE users
		SET points_balance = $1, total_points_earned = $2
		WHERE id = $3
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, pointsBalance, totalPoints, userID))
	if err != nil {
		zap.L().Error("failed to update user points", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateRank(ctx context.Context, userID, rank int) error {
	query := `UPDATE users SET rank = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, rank, userID)
	if err != nil {
		zap.L().Error("failed to update user rank", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		zap.L().Error("failed to update user password", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateLastLogin(ctx context.Context, userID int) error {
	query := `UPDATE users SET last_login_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to update last login", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateDisplayName(ctx context.Context, userID int, displayName string) (*domain.User, error) {
	query := `
		UPDATE users
		SET display_name = $1
		WHERE id = $2
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, displayName, userID))
	if err != nil {
		zap.L().Error("failed to update display name", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateActiveSkin(ctx context.Context, userID, skinID int) error {
	query := `UPDATE users SET active_skin_id = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, skinID, userID)
	if err != nil {
		zap.L().Error("failed to update active skin", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetActive(ctx context.Context, userID int, active bool) error {
	query := `UPDATE users SET is_active = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, active, userID)
	if err != nil {
		zap.L().Error("failed to update active flag", zap.Error(err))
		return err
	}
	return nil
}

// GetRankPosition returns the 1-based global leaderboard position: the number
// of users with a strictly greater lifetime total, plus one.
func (r *Repository) GetRankPosition(ctx context.Context, userID int) (int, error) {
	query := `
		SELECT COUNT(*) + 1
		FROM users
		WHERE total_points_earned > (SELECT total_points_earned FROM users WHERE id = $1)
	`
	var position int
	err := r.db.QueryRow(ctx, query, userID).Scan(&position)
	if err != nil {
		zap.L().Error("failed to get rank position", zap.Error(err))
		return 0, err
	}
	return position, nil
}
