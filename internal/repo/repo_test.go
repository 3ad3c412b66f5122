package repo

import (
	"testing"

	discoveryrepo "github.com/cybercyclones/oceanscan/internal/repo/discovery-repo"
	itemrepo "github.com/cybercyclones/oceanscan/internal/repo/item-repo"
	leaderboardrepo "github.com/cybercyclones/oceanscan/internal/repo/leaderboard-repo"
	skinrepo "github.com/cybercyclones/oceanscan/internal/repo/skin-repo"
	userrepo "github.com/cybercyclones/oceanscan/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.ItemRepo)
	assert.NotNil(t, repo.DiscoveryRepo)
	assert.NotNil(t, repo.SkinRepo)
	assert.NotNil(t, repo.LeaderboardRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &itemrepo.Repository{}, repo.ItemRepo)
	assert.IsType(t, &discoveryrepo.Repository{}, repo.DiscoveryRepo)
	assert.IsType(t, &skinrepo.Repository{}, repo.SkinRepo)
	assert.IsType(t, &leaderboardrepo.Repository{}, repo.LeaderboardRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
