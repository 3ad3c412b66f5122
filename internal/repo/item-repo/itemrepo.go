package itemrepo

import (
	"context"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/cybercyclones/oceanscan/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const itemColumns = `id, name, environmental_impact_description, point_value, category,
		average_decomposition_time, rarity, threat_level`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanItem(row pg.RowScanner) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID, &item.Name, &item.EnvironmentalImpact, &item.PointValue,
		&item.Category, &item.AverageDecompositionTime, &item.Rarity, &item.ThreatLevel,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByName matches the classifier label against the catalog, ignoring case.
func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE LOWER(name) = LOWER($1)`
	item, err := scanItem(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find item by name", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) FindByID(ctx context.Context, itemID int) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find item by id", zap.Error(err))
		return nil, err
	}
	return item, nil
}

// FindUndiscoveredByUser returns catalog entries the user has not recorded a
// discovery for yet.
func (r *Repository) FindUndiscoveredByUser(ctx context.Context, userID int) ([]domain.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE id NOT IN (SELECT item_id FROM user_discoveries WHERE user_id = $1)
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get undiscovered items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			zap.L().Error("can't scan item row", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
