package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	FullName string `json:"fullName" form:"fullName" validate:"required" example:"Alice Chen"`
	Email    string `json:"email" form:"email" validate:"required" example:"alice@example.com"`
	Username string `json:"username" form:"username" validate:"required" example:"alice"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	// Code 必須等於伺服器設定的 ADMIN_SIGNUP_CODE
	Code string `json:"code" form:"code" example:"clinic-2025"`
}
