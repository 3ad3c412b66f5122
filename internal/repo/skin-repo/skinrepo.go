package skinrepo

import (
	"context"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const skinColumns = `id, name, price_points, rarity, release_date, available, description`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanSkin(row pg.RowScanner, skin *domain.Skin) error {
	return row.Scan(
		&skin.ID, &skin.Name, &skin.PricePoints, &skin.Rarity,
		&skin.ReleaseDate, &skin.Available, &skin.Description,
	)
}

func (r *Repository) FindByID(ctx context.Context, skinID int) (*domain.Skin, error) {
	query := `SELECT ` + skinColumns + ` FROM skins WHERE id = $1`
	var skin domain.Skin
	err := scanSkin(r.db.QueryRow(ctx, query, skinID), &skin)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find skin", zap.Error(err))
		return nil, err
	}
	return &skin, nil
}

// FindAvailableNotOwned lists purchasable skins the user does not own yet.
func (r *Repository) FindAvailableNotOwned(ctx context.Context, userID int) ([]domain.Skin, error) {
	query := `
		SELECT ` + skinColumns + `
		FROM skins
		WHERE available = TRUE
		  AND id NOT IN (SELECT skin_id FROM user_skins WHERE user_id = $1)
		ORDER BY price_points
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get available skins", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var skins []domain.Skin
	for rows.Next() {
		var skin domain.Skin
		if err := scanSkin(rows, &skin); err != nil {
			zap.L().Error("can't scan skin row", zap.Error(err))
			return nil, err
		}
		skins = append(skins, skin)
	}
	return skins, nil
}

func (r *Repository) FindOwnedByUser(ctx context.Context, userID int) ([]domain.OwnedSkin, error) {
	query := `
		SELECT s.id, s.name, s.price_points, s.rarity, s.release_date, s.available, s.description,
		       us.acquired_at, us.acquisition_type
		FROM user_skins us
		JOIN skins s ON s.id = us.skin_id
		WHERE us.user_id = $1
		ORDER BY us.acquired_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get owned skins", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var owned []domain.OwnedSkin
	for rows.Next() {
		var o domain.OwnedSkin
		err := rows.Scan(
			&o.ID, &o.Name, &o.PricePoints, &o.Rarity, &o.ReleaseDate, &o.Available,
			&o.Description, &o.AcquiredAt, &o.AcquisitionType,
		)
		if err != nil {
			zap.L().Error("can't scan owned skin row", zap.Error(err))
			return nil, err
		}
		owned = append(owned, o)
	}
	return owned, nil
}

func (r *Repository) OwnershipExists(ctx context.Context, userID, skinID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_skins WHERE user_id = $1 AND skin_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, skinID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check skin ownership", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// CreateOwnership records the ownership fact. The UNIQUE(user_id, skin_id)
// constraint serializes concurrent purchases; callers translate the violation
// into a conflict.
func (r *Repository) CreateOwnership(ctx context.Context, userSkin *domain.UserSkin) (*domain.UserSkin, error) {
	query := `
		INSERT INTO user_skins (user_id, skin_id, acquisition_type)
		VALUES ($1, $2, $3)
		RETURNING id, acquired_at
	`
	err := r.db.QueryRow(ctx, query, userSkin.UserID, userSkin.SkinID, userSkin.AcquisitionType).
		Scan(&userSkin.ID, &userSkin.AcquiredAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save skin ownership", zap.Error(err))
		}
		return nil, err
	}
	return userSkin, nil
}

func (r *Repository) CountOwned(ctx context.Context, userID int) (int, error) {
	query := `SELECT COUNT(*) FROM user_skins WHERE user_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count owned skins", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountsByRarity(ctx context.Context, userID int) (map[string]int, error) {
	query := `
		SELECT s.rarity, COUNT(*)
		FROM user_skins us
		JOIN skins s ON s.id = us.skin_id
		WHERE us.user_id = $1
		GROUP BY s.rarity
	`
	return r.queryCounts(ctx, query, userID)
}

func (r *Repository) CountsByAcquisition(ctx context.Context, userID int) (map[string]int, error) {
	query := `
		SELECT acquisition_type, COUNT(*)
		FROM user_skins
		WHERE user_id = $1
		GROUP BY acquisition_type
	`
	return r.queryCounts(ctx, query, userID)
}

func (r *Repository) queryCounts(ctx context.Context, query string, args ...any) (map[string]int, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get skin aggregates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			zap.L().Error("can't scan aggregate row", zap.Error(err))
			return nil, err
		}
		counts[key] = count
	}
	return counts, nil
}

// TotalPointsSpent sums catalog prices over PURCHASE acquisitions.
func (r *Repository) TotalPointsSpent(ctx context.Context, userID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(s.price_points), 0)
		FROM user_skins us
		JOIN skins s ON s.id = us.skin_id
		WHERE us.user_id = $1 AND us.acquisition_type = 'PURCHASE'
	`
	var total int
	err := r.db.QueryRow(ctx, query, userID).Scan(&total)
	if err != nil {
		zap.L().Error("failed to sum points spent", zap.Error(err))
		return 0, err
	}
	return total, nil
}
