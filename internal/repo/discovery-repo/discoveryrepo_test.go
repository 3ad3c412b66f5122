package discoveryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Exists(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    bool
	}{
		{
			name: "Discovery exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM user_discoveries WHERE user_id = $1 AND item_id = $2)`)).
					WithArgs(1, 7).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expectErr: false,
			result:    true,
		},
		{
			name: "Discovery missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM user_discoveries WHERE user_id = $1 AND item_id = $2)`)).
					WithArgs(1, 7).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectErr: false,
			result:    false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM user_discoveries WHERE user_id = $1 AND item_id = $2)`)).
					WithArgs(1, 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Exists(context.Background(), 1, 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	discovered := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		isUniqueErr bool
	}{
		{
			name: "Create discovery successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO user_discoveries (user_id, item_id, points_awarded)
			VALUES ($1, $2, $3)
			RETURNING id, discovered_at
		`)).
					WithArgs(1, 7, 40).
					WillReturnRows(pgxmock.NewRows([]string{"id", "discovered_at"}).AddRow(5, discovered))
			},
			expectErr: false,
		},
		{
			name: "Duplicate loses on unique constraint",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO user_discoveries (user_id, item_id, points_awarded)
			VALUES ($1, $2, $3)
			RETURNING id, discovered_at
		`)).
					WithArgs(1, 7, 40).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:   true,
			isUniqueErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &domain.UserDiscovery{
				UserID:        1,
				ItemID:        7,
				PointsAwarded: 40,
			})
			if tt.expectErr {
				assert.Error(t, err)
				if tt.isUniqueErr {
					var pgErr *pgconn.PgError
					assert.ErrorAs(t, err, &pgErr)
					assert.Equal(t, "23505", pgErr.Code)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, result.ID)
				assert.Equal(t, discovered, result.DiscoveredAt)
			}
		})
	}
}

func TestRepository_FindByUser(t *testing.T) {
	repo, mock := NewMock(t)

	discovered := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query := `
			SELECT i.name, i.category, i.rarity, d.points_awarded, d.discovered_at
			FROM user_discoveries d
			JOIN items i ON i.id = d.item_id
			WHERE d.user_id = $1
			ORDER BY d.discovered_at DESC
		`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.DiscoveryDetail
	}{
		{
			name: "History newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"name", "category", "rarity", "points_awarded", "discovered_at"}).
					AddRow("Plastic Bottle", domain.CategoryPlastic, domain.RarityCommon, 20, discovered)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.DiscoveryDetail{
				{
					ItemName:      "Plastic Bottle",
					Category:      domain.CategoryPlastic,
					Rarity:        domain.RarityCommon,
					PointsAwarded: 20,
					DiscoveredAt:  discovered,
				},
			},
		},
		{
			name: "Empty history",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"name", "category", "rarity", "points_awarded", "discovered_at"}))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUser(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_CountsByCategory(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
			SELECT i.category, COUNT(*)
			FROM user_discoveries d
			JOIN items i ON i.id = d.item_id
			WHERE d.user_id = $1
			GROUP BY i.category
		`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    map[string]int
	}{
		{
			name: "Counts grouped by category",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"category", "count"}).
					AddRow(domain.CategoryPlastic, 10).
					AddRow(domain.CategoryMetal, 5)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: map[string]int{
				domain.CategoryPlastic: 10,
				domain.CategoryMetal:   5,
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CountsByCategory(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindPopular(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
			SELECT i.name, i.category, COUNT(*) AS discovery_count
			FROM user_discoveries d
			JOIN items i ON i.id = d.item_id
			GROUP BY i.name, i.category
			ORDER BY discovery_count DESC
			LIMIT $1
		`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.PopularDiscovery
	}{
		{
			name: "Popular items in descending order",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"name", "category", "discovery_count"}).
					AddRow("Plastic Bottle", domain.CategoryPlastic, 42).
					AddRow("Aluminum Can", domain.CategoryMetal, 30)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.PopularDiscovery{
				{ItemName: "Plastic Bottle", Category: domain.CategoryPlastic, TimesDiscovered: 42},
				{ItemName: "Aluminum Can", Category: domain.CategoryMetal, TimesDiscovered: 30},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPopular(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
