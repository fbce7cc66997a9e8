package api

import "healthcare-clinic/internal/model"

// swagger:model api.CreateMedicineRequest
type CreateMedicineRequest struct {
	Name     string   `json:"name" form:"name" validate:"required" example:"Zinc 50mg"`
	Price    *float64 `json:"price" form:"price" validate:"required,gte=0" example:"9.99"`
	Category string   `json:"category" form:"category" validate:"required" example:"Vitamins"`
	Stock    *int     `json:"stock" form:"stock" validate:"required,gte=0" example:"20"`
	Image    string   `json:"image" form:"image" example:"💊"`
}

// swagger:model api.UpdateMedicineRequest
type UpdateMedicineRequest struct {
	Name     string   `json:"name" form:"name" example:"Zinc 50mg"`
	Price    *float64 `json:"price" form:"price" validate:"omitempty,gte=0" example:"8.49"`
	Category string   `json:"category" form:"category" example:"Vitamins"`
	Stock    *int     `json:"stock" form:"stock" validate:"omitempty,gte=0" example:"15"`
	Image    string   `json:"image" form:"image" example:"💊"`
}

// Patch 空字串視為未提供
func (r UpdateMedicineRequest) Patch() model.MedicinePatch {
	p := model.MedicinePatch{Price: r.Price, Stock: r.Stock}
	if r.Name != "" {
		p.Name = &r.Name
	}
	if r.Category != "" {
		p.Category = &r.Category
	}
	if r.Image != "" {
		p.Image = &r.Image
	}
	return p
}
