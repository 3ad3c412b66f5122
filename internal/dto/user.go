package dto

import "time"

type ProfileResponseDTO struct {
	Username            string     `json:"username" example:"reef_ranger"`
	DisplayName         *string    `json:"display_name,omitempty" example:"Reef Ranger"`
	Rank                int        `json:"rank" example:"2"`
	RankTitle           string     `json:"rank_title" example:"Guardian"`
	PointsBalance       int        `json:"points_balance" example:"320"`
	TotalPointsEarned   int        `json:"total_points_earned" example:"620"`
	LeaderboardPosition int        `json:"leaderboard_position" example:"4"`
	ActiveSkinID        *int       `json:"active_skin_id,omitempty" example:"3"`
	MemberSince         time.Time  `json:"member_since" example:"2025-01-15T09:00:00Z"`
	LastLogin           *time.Time `json:"last_login,omitempty" example:"2025-06-01T12:00:00Z"`
}

type PublicProfileResponseDTO struct {
	Username    string  `json:"username" example:"deep_diver"`
	DisplayName *string `json:"display_name,omitempty" example:"Deep Diver"`
	Rank        int     `json:"rank" example:"1"`
	RankTitle   string  `json:"rank_title" example:"Explorer"`
	TotalPoints int     `json:"total_points" example:"180"`
}

type UpdateDisplayNameRequestDTO struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=100" example:"Reef Ranger"`
}

type UsernameExistsResponseDTO struct {
	Username string `json:"username" example:"reef_ranger"`
	Exists   bool   `json:"exists" example:"true"`
}
