package repo

import (
	"github.com/cybercyclones/oceanscan/internal/pg"
	discoveryrepo "github.com/cybercyclones/oceanscan/internal/repo/discovery-repo"
	itemrepo "github.com/cybercyclones/oceanscan/internal/repo/item-repo"
	leaderboardrepo "github.com/cybercyclones/oceanscan/internal/repo/leaderboard-repo"
	skinrepo "github.com/cybercyclones/oceanscan/internal/repo/skin-repo"
	userrepo "github.com/cybercyclones/oceanscan/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	ItemRepo        *itemrepo.Repository
	DiscoveryRepo   *discoveryrepo.Repository
	SkinRepo        *skinrepo.Repository
	LeaderboardRepo *leaderboardrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		ItemRepo:        itemrepo.New(conn),
		DiscoveryRepo:   discoveryrepo.New(conn),
		SkinRepo:        skinrepo.New(conn),
		LeaderboardRepo: leaderboardrepo.New(conn),
	}
}
