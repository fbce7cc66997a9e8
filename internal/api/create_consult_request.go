package api

// swagger:model api.CreateConsultRequest
type CreateConsultRequest struct {
	Name      string `json:"name" form:"name" validate:"required" example:"Bob Lin"`
	Email     string `json:"email" form:"email" validate:"required" example:"bob@example.com"`
	Phone     string `json:"phone" form:"phone" validate:"required" example:"0912345678"`
	Specialty string `json:"specialty" form:"specialty" validate:"required" example:"Cardiology"`
	Symptoms  string `json:"symptoms" form:"symptoms" validate:"required" example:"chest pain after exercise"`
}
