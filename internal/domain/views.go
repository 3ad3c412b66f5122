package domain

import "time"

// Read-model rows produced by aggregate repository queries.

type DiscoveryDetail struct {
	ItemName      string
	Category      string
	Rarity        string
	PointsAwarded int
	DiscoveredAt  time.Time
}

type PopularDiscovery struct {
	ItemName        string
	Category        string
	TimesDiscovered int
}

type RankedUser struct {
	UserID      int
	Position    int
	Username    string
	DisplayName *string
	TotalPoints int
	RankTier    int
}

type WeeklyScore struct {
	UserID       int
	Username     string
	DisplayName  *string
	WeeklyPoints int
	RankTier     int
}

type CategoryScore struct {
	UserID      int
	Username    string
	DisplayName *string
	Discoveries int
	Points      int
}

type OwnedSkin struct {
	Skin
	AcquiredAt      time.Time
	AcquisitionType string
}
