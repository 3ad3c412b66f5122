package dto

import "time"

type SkinDTO struct {
	ID          int    `json:"id" example:"3"`
	Name        string `json:"name" example:"Coral Guardian"`
	PricePoints int    `json:"price_points" example:"300"`
	Rarity      string `json:"rarity" example:"RARE"`
	Description string `json:"description" example:"Armour grown from living coral"`
}

type OwnedSkinDTO struct {
	ID              int       `json:"id" example:"3"`
	Name            string    `json:"name" example:"Coral Guardian"`
	Rarity          string    `json:"rarity" example:"RARE"`
	AcquisitionType string    `json:"acquisition_type" example:"PURCHASE"`
	AcquiredAt      time.Time `json:"acquired_at" example:"2025-06-01T12:30:00Z"`
	IsEquipped      bool      `json:"is_equipped" example:"true"`
}

type PurchaseResponseDTO struct {
	Message     string `json:"message" example:"Skin purchased"`
	SkinName    string `json:"skin_name" example:"Coral Guardian"`
	Rarity      string `json:"rarity" example:"RARE"`
	PointsSpent int    `json:"points_spent" example:"300"`
	NewBalance  int    `json:"new_balance" example:"20"`
}

type EquipResponseDTO struct {
	Message    string    `json:"message" example:"Skin equipped"`
	SkinName   string    `json:"skin_name" example:"Coral Guardian"`
	Rarity     string    `json:"rarity" example:"RARE"`
	EquippedAt time.Time `json:"equipped_at" example:"2025-06-01T12:31:00Z"`
}

type SkinStatsResponseDTO struct {
	TotalSkins           int            `json:"total_skins" example:"4"`
	RarityBreakdown      map[string]int `json:"rarity_breakdown"`
	AcquisitionBreakdown map[string]int `json:"acquisition_breakdown"`
	TotalPointsSpent     int            `json:"total_points_spent" example:"450"`
}
