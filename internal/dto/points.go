package dto

type PointsSummaryResponseDTO struct {
	CurrentBalance      int    `json:"current_balance" example:"320"`
	TotalEarned         int    `json:"total_earned" example:"620"`
	CurrentRank         int    `json:"current_rank" example:"2"`
	RankTitle           string `json:"rank_title" example:"Guardian"`
	LeaderboardPosition int    `json:"leaderboard_position" example:"4"`
	NextRank            int    `json:"next_rank" example:"3"`
	PointsToNextRank    *int   `json:"points_to_next_rank,omitempty" example:"380"`
	DiscoveriesCount    int    `json:"discoveries_count" example:"18"`
}

type PointsHistoryResponseDTO struct {
	Timeframe string         `json:"timeframe" example:"week"`
	Events    []DiscoveryDTO `json:"events"`
}

type PointsBreakdownResponseDTO struct {
	TotalEarned     int            `json:"total_earned" example:"620"`
	FromDiscoveries int            `json:"from_discoveries" example:"620"`
	ByCategory      map[string]int `json:"by_category"`
	ByRarity        map[string]int `json:"by_rarity"`
}

type DeductRequestDTO struct {
	Points int    `json:"points" validate:"required,min=1" example:"150"`
	Reason string `json:"reason,omitempty" example:"skin purchase"`
}

type DeductResponseDTO struct {
	PointsDeducted int `json:"points_deducted" example:"150"`
	NewBalance     int `json:"new_balance" example:"170"`
}
