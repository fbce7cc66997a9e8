package api

// swagger:model api.CreateAppointmentRequest
type CreateAppointmentRequest struct {
	Name   string `json:"name" form:"name" validate:"required" example:"Bob Lin"`
	Email  string `json:"email" form:"email" validate:"required" example:"bob@example.com"`
	Phone  string `json:"phone" form:"phone" validate:"required" example:"0912345678"`
	Doctor string `json:"doctor" form:"doctor" validate:"required" example:"Dr. Smith"`
	Date   string `json:"date" form:"date" validate:"required" example:"2025-06-01"`
	Time   string `json:"time" form:"time" validate:"required" example:"10:30"`
}
