package dto

import "time"

type ScanResponseDTO struct {
	ItemName            string `json:"item_name" example:"plastic bottle"`
	Category            string `json:"category" example:"PLASTIC"`
	PointsAwarded       int    `json:"points_awarded" example:"40"`
	NewTotalPoints      int    `json:"new_total_points" example:"140"`
	EnvironmentalImpact string `json:"environmental_impact" example:"Breaks down into microplastics that enter the food chain"`
	DecompositionTime   int    `json:"decomposition_time_days" example:"450"`
	ThreatLevel         int    `json:"threat_level" example:"3"`
}

type DiscoveryDTO struct {
	ItemName      string    `json:"item_name" example:"fishing net"`
	Category      string    `json:"category" example:"PLASTIC"`
	Rarity        string    `json:"rarity" example:"RARE"`
	PointsAwarded int       `json:"points_awarded" example:"120"`
	DiscoveredAt  time.Time `json:"discovered_at" example:"2025-06-01T12:30:00Z"`
}

type DiscoveryStatsResponseDTO struct {
	TotalDiscoveries         int            `json:"total_discoveries" example:"12"`
	Categories               map[string]int `json:"categories"`
	Rarities                 map[string]int `json:"rarities"`
	TotalDecompositionYears  float64        `json:"total_decomposition_years" example:"14.79"`
	DiscoveriesLastWeek      int            `json:"discoveries_last_week" example:"3"`
	TotalPointsFromDiscovery int            `json:"total_points_from_discoveries" example:"380"`
}

type UndiscoveredItemDTO struct {
	Name        string `json:"name" example:"glass bottle"`
	Category    string `json:"category" example:"GLASS"`
	Rarity      string `json:"rarity" example:"UNCOMMON"`
	PointValue  int    `json:"point_value" example:"15"`
	ThreatLevel int    `json:"threat_level" example:"2"`
}

type PopularDiscoveryDTO struct {
	ItemName        string `json:"item_name" example:"plastic bottle"`
	Category        string `json:"category" example:"PLASTIC"`
	TimesDiscovered int    `json:"times_discovered" example:"87"`
}
