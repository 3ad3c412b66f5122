package dto

type LeaderboardEntryDTO struct {
	Rank        int     `json:"rank" example:"1"`
	Username    string  `json:"username" example:"reef_ranger"`
	DisplayName *string `json:"display_name,omitempty" example:"Reef Ranger"`
	TotalPoints int     `json:"total_points" example:"1250"`
	RankTier    int     `json:"rank_tier" example:"3"`
	RankTitle   string  `json:"rank_title" example:"Ocean Protector"`
}

type WeeklyEntryDTO struct {
	Rank         int     `json:"rank" example:"1"`
	Username     string  `json:"username" example:"reef_ranger"`
	DisplayName  *string `json:"display_name,omitempty" example:"Reef Ranger"`
	WeeklyPoints int     `json:"weekly_points" example:"240"`
	RankTier     int     `json:"rank_tier" example:"2"`
}

type CategoryEntryDTO struct {
	Rank        int     `json:"rank" example:"1"`
	Username    string  `json:"username" example:"reef_ranger"`
	DisplayName *string `json:"display_name,omitempty" example:"Reef Ranger"`
	Discoveries int     `json:"discoveries" example:"9"`
	Points      int     `json:"points" example:"180"`
}

type MyRankingResponseDTO struct {
	Username         string         `json:"username" example:"reef_ranger"`
	DisplayName      *string        `json:"display_name,omitempty" example:"Reef Ranger"`
	GlobalRank       int            `json:"global_rank" example:"4"`
	TotalPoints      int            `json:"total_points" example:"620"`
	WeeklyPoints     int            `json:"weekly_points" example:"120"`
	RankTitle        string         `json:"rank_title" example:"Guardian"`
	CategoryRankings map[string]int `json:"category_rankings"`
	TotalDiscoveries int            `json:"total_discoveries" example:"18"`
}

type NearbyEntryDTO struct {
	Rank          int     `json:"rank" example:"5"`
	Username      string  `json:"username" example:"deep_diver"`
	DisplayName   *string `json:"display_name,omitempty" example:"Deep Diver"`
	TotalPoints   int     `json:"total_points" example:"540"`
	RankTier      int     `json:"rank_tier" example:"2"`
	IsCurrentUser bool    `json:"is_current_user" example:"false"`
}
