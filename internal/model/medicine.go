// File: internal/model/medicine.go
package model

// DefaultMedicineImage 新增藥品未指定圖示時使用
const DefaultMedicineImage = "💊"

type Medicine struct {
	ID       int     `db:"id" bson:"id" json:"id"`
	Name     string  `db:"name" bson:"name" json:"name"`
	Price    float64 `db:"price" bson:"price" json:"price"`
	Category string  `db:"category" bson:"category" json:"category"`
	Stock    int     `db:"stock" bson:"stock" json:"stock"`
	Image    string  `db:"image" bson:"image" json:"image"`
}

// MedicinePatch 僅包含要覆寫的欄位，nil 代表不變更
type MedicinePatch struct {
	Name     *string
	Price    *float64
	Category *string
	Stock    *int
	Image    *string
}

// Apply 將 patch 合併到 m
func (p MedicinePatch) Apply(m *Medicine) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Stock != nil {
		m.Stock = *p.Stock
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
}
