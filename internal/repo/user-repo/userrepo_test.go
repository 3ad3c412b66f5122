package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cybercyclones/oceanscan/internal/domain"
	"github.com/jackc/pgx/v5"
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

var userRows = []string{
	"id", "username", "email", "password_hash", "display_name", "points_balance",
	"total_points_earned", "rank", "active_skin_id", "is_admin", "is_active", "created_at", "last_login_at",
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			username: "finn",
			mockSetup: func() {
				rows := pgxmock.NewRows(userRows).
					AddRow(1, "finn", "finn@example.com", "hashed", nil, 180, 350, 1, nil, false, true, created, nil)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE username = $1`)).
					WithArgs("finn").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:                1,
				Username:          "finn",
				Email:             "finn@example.com",
				PasswordHash:      "hashed",
				PointsBalance:     180,
				TotalPointsEarned: 350,
				Rank:              1,
				IsActive:          true,
				CreatedAt:         created,
			},
		},
		{
			name:     "User not found",
			username: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE username = $1`)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			username: "finn",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE username = $1`)).
					WithArgs("finn").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)
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

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	displayName := "Finn the Diver"

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Username:     "finn",
				Email:        "finn@example.com",
				PasswordHash: "hashed",
				DisplayName:  &displayName,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO users (username, email, password_hash, display_name)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`)).
					WithArgs("finn", "finn@example.com", "hashed", &displayName).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Username:     "finn",
				Email:        "finn@example.com",
				PasswordHash: "hashed",
				DisplayName:  &displayName,
				IsActive:     true,
				CreatedAt:    created,
			},
		},
		{
			name: "Database error",
			user: &domain.User{
				Username:     "finn",
				Email:        "finn@example.com",
				PasswordHash: "hashed",
				DisplayName:  &displayName,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO users (username, email, password_hash, display_name)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`)).
					WithArgs("finn", "finn@example.com", "hashed", &displayName).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdatePoints(t *testing.T) {
	repo, mock := NewMock(t)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Both balances updated",
			mockSetup: func() {
				rows := pgxmock.NewRows(userRows).
					AddRow(1, "finn", "finn@example.com", "hashed", nil, 120, 120, 1, nil, false, true, created, nil)
				mock.ExpectQuery(regexp.QuoteMeta(`
			UPDATE users
			SET points_balance = $1, total_points_earned = $2
			WHERE id = $3
			RETURNING ` + userColumns)).
					WithArgs(120, 120, 1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:                1,
				Username:          "finn",
				Email:             "finn@example.com",
				PasswordHash:      "hashed",
				PointsBalance:     120,
				TotalPointsEarned: 120,
				Rank:              1,
				IsActive:          true,
				CreatedAt:         created,
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			UPDATE users
			SET points_balance = $1, total_points_earned = $2
			WHERE id = $3
			RETURNING ` + userColumns)).
					WithArgs(120, 120, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdatePoints(context.Background(), 1, 120, 120)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetRankPosition(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    int
	}{
		{
			name: "Position counts strictly greater totals",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT COUNT(*) + 1
			FROM users
			WHERE total_points_earned > (SELECT total_points_earned FROM users WHERE id = $1)
		`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"position"}).AddRow(4))
			},
			expectErr: false,
			result:    4,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT COUNT(*) + 1
			FROM users
			WHERE total_points_earned > (SELECT total_points_earned FROM users WHERE id = $1)
		`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetRankPosition(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_SetActive(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		active    bool
		mockSetup func()
		expectErr bool
	}{
		{
			name:   "Deactivate",
			active: false,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET is_active = $1 WHERE id = $2`)).
					WithArgs(false, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:   "Database error",
			active: true,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET is_active = $1 WHERE id = $2`)).
					WithArgs(true, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SetActive(context.Background(), 1, tt.active)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
