package discoveryrepo

import (
	"context"
	"time"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Exists(ctx context.Context, userID, itemID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_discoveries WHERE user_id = $1 AND item_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, itemID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check discovery existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Create inserts the discovery fact. The UNIQUE(user_id, item_id) constraint
// serializes concurrent scans of the same item; callers translate the
// violation into a conflict.
func (r *Repository) Create(ctx context.Context, discovery *domain.UserDiscovery) (*domain.UserDiscovery, error) {
	query := `
		INSERT INTO user_discoveries (user_id, item_id, points_awarded)
		VALUES ($1, $2, $3)
		RETURNING id, discovered_at
	`
	err := r.db.QueryRow(ctx, query, discovery.UserID, discovery.ItemID, discovery.PointsAwarded).
		Scan(&discovery.ID, &discovery.DiscoveredAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save discovery", zap.Error(err))
		}
		return nil, err
	}
	return discovery, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.DiscoveryDetail, error) {
	query := `
		SELECT i.name, i.category, i.rarity, d.points_awarded, d.discovered_at
		FROM user_discoveries d
		JOIN items i ON i.id = d.item_id
		WHERE d.user_id = $1
		ORDER BY d.discovered_at DESC
	`
	return r.queryDetails(ctx, query, userID)
}

// FindByUserSince returns discoveries on or after the cutoff, newest first.
func (r *Repository) FindByUserSince(ctx context.Context, userID int, since time.Time) ([]domain.DiscoveryDetail, error) {
	query := `
		SELECT i.name, i.category, i.rarity, d.points_awarded, d.discovered_at
		FROM user_discoveries d
		JOIN items i ON i.id = d.item_id
		WHERE d.user_id = $1 AND d.discovered_at >= $2
		ORDER BY d.discovered_at DESC
	`
	return r.queryDetails(ctx, query, userID, since)
}

func (r *Repository) queryDetails(ctx context.Context, query string, args ...any) ([]domain.DiscoveryDetail, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get discoveries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var details []domain.DiscoveryDetail
	for rows.Next() {
		var d domain.DiscoveryDetail
		err := rows.Scan(&d.ItemName, &d.Category, &d.Rarity, &d.PointsAwarded, &d.DiscoveredAt)
		if err != nil {
			zap.L().Error("can't scan discovery row", zap.Error(err))
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (r *Repository) CountByUser(ctx context.Context, userID int) (int, error) {
	query := `SELECT COUNT(*) FROM user_discoveries WHERE user_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count discoveries", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountByUserSince(ctx context.Context, userID int, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM user_discoveries WHERE user_id = $1 AND discovered_at >= $2`
	var count int
	err := r.db.QueryRow(ctx, query, userID, since).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count recent discoveries", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SumPointsByUser(ctx context.Context, userID int) (int, error) {
	query := `SELECT COALESCE(SUM(points_awarded), 0) FROM user_discoveries WHERE user_id = $1`
	var total int
	err := r.db.QueryRow(ctx, query, userID).Scan(&total)
	if err != nil {
		zap.L().Error("failed to sum discovery points", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// CountsByCategory groups the user's discoveries by item category.
func (r *Repository) CountsByCategory(ctx context.Context, userID int) (map[string]int, error) {
	query := `
		SELECT i.category, COUNT(*)
		FROM user_discoveries d
		JOIN items i ON i.id = d.item_id
		WHERE d.user_id = $1
		GROUP BY i.category
	`
	return r.queryCounts(ctx, query, userID)
}

// CountsByRarity groups the user's discoveries by item rarity.
func (r *Repository) CountsByRarity(ctx context.Context, userID int) (map[string]int, error) {
	query := `
		SELECT i.rarity, COUNT(*)
		FROM user_discoveries d
		JOIN items i ON i.id = d.item_id
		WHERE d.user_id = $1
		GROUP BY i.rarity
	`
	return r.queryCounts(ctx, query, userID)
}

// PointsByCategory sums awarded points per item category.
func (r *Repository) PointsByCategory(ctx context.Context, userID int) (map[string]int, error) {
	query := `
		SELECT i.category, COALESCE(SUM(d.points_awarded), 0)
		FROM user_discoveries d
		JOIN items i ON i.id = d.item_id
		WHERE d.user_id = $1
		GROUP BY i.category
	`
	return r.queryCounts(ctx, query, userID)
}

// PointsByRarity sums awarded points per item rarity.
func (r *Repository) PointsByRarity(ctx context.Context, userID int) (map[string]int, error) {
	query := `
		SELECT i.rarity, COALESCE(SUM(d.points_awarded), 0)
		FROM user_discoveries d
		JOIN items i ON i.id = d.item_id
		WHERE d.user_id = $1
		GROUP BY i.rarity
	`
	return r.queryCounts(ctx, query, userID)
}

func (r *Repository) queryCounts(ctx context.Context, query string, args ...any) (map[string]int, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get discovery aggregates", zap.Error(err))
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

func (r *Repository) TotalDecompositionDays(ctx context.Context, userID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(i.average_decomposition_time), 0)
		FROM user_discoveries d
		JOIN items i ON i.id = d.item_id
		WHERE d.user_id = $1
	`
	var days int
	err := r.db.QueryRow(ctx, query, userID).Scan(&days)
	if err != nil {
		zap.L().Error("failed to sum decomposition time", zap.Error(err))
		return 0, err
	}
	return days, nil
}

// FindPopular returns the most-discovered catalog items across all users.
func (r *Repository) FindPopular(ctx context.Context, limit int) ([]domain.PopularDiscovery, error) {
	query := `
		SELECT i.name, i.category, COUNT(*) AS discovery_count
		FROM user_discoveries d
		JOIN items i ON i.id = d.item_id
		GROUP BY i.name, i.category
		ORDER BY discovery_count DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get popular discoveries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var popular []domain.PopularDiscovery
	for rows.Next() {
		var p domain.PopularDiscovery
		if err := rows.Scan(&p.ItemName, &p.Category, &p.TimesDiscovered); err != nil {
			zap.L().Error("can't scan popular row", zap.Error(err))
			return nil, err
		}
		popular = append(popular, p)
	}
	return popular, nil
}
