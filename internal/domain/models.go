package domain

import "time"

const (
	CategoryPlastic = "PLASTIC"
	CategoryMetal   = "METAL"
	CategoryGlass   = "GLASS"
	CategoryOther   = "OTHER"
)

// Categories lists all item categories in display order.
var Categories = []string{CategoryPlastic, CategoryMetal, CategoryGlass, CategoryOther}

const (
	RarityCommon    = "COMMON"
	RarityUncommon  = "UNCOMMON"
	RarityRare      = "RARE"
	RarityEpic      = "EPIC"
	RarityLegendary = "LEGENDARY"
)

const (
	AcquisitionPurchase     = "PURCHASE"
	AcquisitionAchievement  = "ACHIEVEMENT"
	AcquisitionSpecialEvent = "SPECIAL_EVENT"
)

type User struct {
	ID                int        `db:"id"`
	Username          string     `db:"username"`
	Email             string     `db:"email"`
	PasswordHash      string     `db:"password_hash"`
	DisplayName       *string    `db:"display_name"`
	PointsBalance     int        `db:"points_balance"`
	TotalPointsEarned int        `db:"total_points_earned"`
	Rank              int        `db:"rank"`
	ActiveSkinID      *int       `db:"active_skin_id"`
	IsAdmin           bool       `db:"is_admin"`
	IsActive          bool       `db:"is_active"`
	CreatedAt         time.Time  `db:"created_at"`
	LastLoginAt       *time.Time `db:"last_login_at"`
}

type Item struct {
	ID                       int    `db:"id"`
	Name                     string `db:"name"`
	EnvironmentalImpact      string `db:"environmental_impact_description"`
	PointValue               int    `db:"point_value"`
	Category                 string `db:"category"`
	AverageDecompositionTime int    `db:"average_decomposition_time"`
	Rarity                   string `db:"rarity"`
	ThreatLevel              int    `db:"threat_level"`
}

type Skin struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	PricePoints int       `db:"price_points"`
	Rarity      string    `db:"rarity"`
	ReleaseDate time.Time `db:"release_date"`
	Available   bool      `db:"available"`
	Description string    `db:"description"`
}

type UserDiscovery struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	ItemID        int       `db:"item_id"`
	DiscoveredAt  time.Time `db:"discovered_at"`
	PointsAwarded int       `db:"points_awarded"`
}

type UserSkin struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	SkinID          int       `db:"skin_id"`
	AcquiredAt      time.Time `db:"acquired_at"`
	AcquisitionType string    `db:"acquisition_type"`
}

var rankTitles = map[int]string{
	0: "Beginner",
	1: "Explorer",
	2: "Guardian",
	3: "Ocean Protector",
}

// RankTitle returns the display title for a rank tier.
func RankTitle(rank int) string {
	title, ok := rankTitles[rank]
	if !ok {
		return "Unknown"
	}
	return title
}
