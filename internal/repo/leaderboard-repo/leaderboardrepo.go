package leaderboardrepo

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

// FindGlobalTop ranks active users by lifetime points with RANK() semantics:
// equal totals share a position and the next distinct total continues at its
// row number.
func (r *Repository) FindGlobalTop(ctx context.Context, limit int) ([]domain.RankedUser, error) {
	query := `
		SELECT id, RANK() OVER (ORDER BY total_points_earned DESC) AS position,
		       username, display_name, total_points_earned, rank
		FROM users
		WHERE is_active = TRUE
		ORDER BY position
		LIMIT $1
	`
	return r.queryRanked(ctx, query, limit)
}

// FindNearby returns the active users whose global position falls inside
// [lo, hi].
func (r *Repository) FindNearby(ctx context.Context, lo, hi int) ([]domain.RankedUser, error) {
	query := `
		SELECT id, position, username, display_name, total_points_earned, rank
		FROM (
			SELECT id, RANK() OVER (ORDER BY total_points_earned DESC) AS position,
			       username, display_name, total_points_earned, rank
			FROM users
			WHERE is_active = TRUE
		) ranked
		WHERE position BETWEEN $1 AND $2
		ORDER BY position
	`
	return r.queryRanked(ctx, query, lo, hi)
}

func (r *Repository) queryRanked(ctx context.Context, query string, args ...any) ([]domain.RankedUser, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get ranked users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ranked []domain.RankedUser
	for rows.Next() {
		var u domain.RankedUser
		err := rows.Scan(&u.UserID, &u.Position, &u.Username, &u.DisplayName, &u.TotalPoints, &u.RankTier)
		if err != nil {
			zap.L().Error("can't scan ranked row", zap.Error(err))
			return nil, err
		}
		ranked = append(ranked, u)
	}
	return ranked, nil
}

// FindWeeklyTop sums discovery points awarded on or after the cutoff, grouped
// by user, highest first.
func (r *Repository) FindWeeklyTop(ctx context.Context, since time.Time, limit int) ([]domain.WeeklyScore, error) {
	query := `
		SELECT u.id, u.username, u.display_name, SUM(d.points_awarded) AS weekly_total, u.rank
		FROM user_discoveries d
		JOIN users u ON u.id = d.user_id
		WHERE d.discovered_at >= $1
		GROUP BY u.id, u.username, u.display_name, u.rank
		ORDER BY weekly_total DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		zap.L().Error("can't get weekly scores", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var scores []domain.WeeklyScore
	for rows.Next() {
		var s domain.WeeklyScore
		err := rows.Scan(&s.UserID, &s.Username, &s.DisplayName, &s.WeeklyPoints, &s.RankTier)
		if err != nil {
			zap.L().Error("can't scan weekly row", zap.Error(err))
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, nil
}

// FindCategoryTop is the weekly aggregation restricted to one item category,
// with discovery counts.
func (r *Repository) FindCategoryTop(ctx context.Context, category string, since time.Time, limit int) ([]domain.CategoryScore, error) {
	query := `
		SELECT u.id, u.username, u.display_name, COUNT(d.id) AS discoveries, SUM(d.points_awarded) AS points
		FROM user_discoveries d
		JOIN users u ON u.id = d.user_id
		JOIN items i ON i.id = d.item_id
		WHERE i.category = $1 AND d.discovered_at >= $2
		GROUP BY u.id, u.username, u.display_name
		ORDER BY points DESC
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, category, since, limit)
	if err != nil {
		zap.L().Error("can't get category scores", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var scores []domain.CategoryScore
	for rows.Next() {
		var s domain.CategoryScore
		err := rows.Scan(&s.UserID, &s.Username, &s.DisplayName, &s.Discoveries, &s.Points)
		if err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, nil
}

// SumWeeklyPoints totals the user's discovery points since the cutoff.
func (r *Repository) SumWeeklyPoints(ctx context.Context, userID int, since time.Time) (int, error) {
	query := `
		SELECT COALESCE(SUM(points_awarded), 0)
		FROM user_discoveries
		WHERE user_id = $1 AND discovered_at >= $2
	`
	var total int
	err := r.db.QueryRow(ctx, query, userID, since).Scan(&total)
	if err != nil {
		zap.L().Error("failed to sum weekly points", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// GetCategoryPosition counts users with strictly more all-time points in the
// category, plus one.
func (r *Repository) GetCategoryPosition(ctx context.Context, userID int, category string) (int, error) {
	query := `
		SELECT COUNT(*) + 1
		FROM (
			SELECT d.user_id, SUM(d.points_awarded) AS points
			FROM user_discoveries d
			JOIN items i ON i.id = d.item_id
			WHERE i.category = $2
			GROUP BY d.user_id
		) scored
		WHERE scored.points > COALESCE((
			SELECT SUM(d.points_awarded)
			FROM user_discoveries d
			JOIN items i ON i.id = d.item_id
			WHERE d.user_id = $1 AND i.category = $2
		), 0)
	`
	var position int
	err := r.db.QueryRow(ctx, query, userID, category).Scan(&position)
	if err != nil {
		zap.L().Error("failed to get category position", zap.Error(err))
		return 0, err
	}
	return position, nil
}
