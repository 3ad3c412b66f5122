package dto

type RegisterRequestDTO struct {
	Username    string  `json:"username" validate:"required,min=3,max=50" example:"reef_ranger"`
	Email       string  `json:"email" validate:"required,email" example:"ranger@example.com"`
	Password    string  `json:"password" validate:"required,min=8" example:"Tidal1234"`
	DisplayName *string `json:"display_name,omitempty" example:"Reef Ranger"`
}

type RegisterResponseDTO struct {
	Message  string `json:"message" example:"User successfully registered"`
	Username string `json:"username" example:"reef_ranger"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"reef_ranger"`
	Password string `json:"password" validate:"required,min=8" example:"Tidal1234"`
}

type LoginResponseDTO struct {
	Message  string `json:"message" example:"User successfully authenticated"`
	Username string `json:"username" example:"reef_ranger"`
	Rank     int    `json:"rank" example:"1"`
}

type ChangePasswordRequestDTO struct {
	OldPassword string `json:"old_password" validate:"required" example:"Tidal1234"`
	NewPassword string `json:"new_password" validate:"required,min=8" example:"Abyssal5678"`
}

type ResetPasswordRequestDTO struct {
	Email string `json:"email" validate:"required,email" example:"ranger@example.com"`
}

type ResetPasswordConfirmDTO struct {
	NewPassword string `json:"new_password" validate:"required,min=8" example:"Abyssal5678"`
}

type ResetPasswordResponseDTO struct {
	Message    string `json:"message" example:"If the email is registered, a reset token has been issued"`
	ResetToken string `json:"reset_token,omitempty"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
