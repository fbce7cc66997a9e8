// Package catalog 提供預設藥品目錄與藥品列表快取
package catalog

import "healthcare-clinic/internal/model"

const injectionImage = "💉"

// DefaultMedicines 回傳啟動時若藥品表為空要寫入的 12 項藥品
func DefaultMedicines() []model.Medicine {
	pill := model.DefaultMedicineImage
	return []model.Medicine{
		{ID: 1, Name: "Paracetamol 500mg", Price: 15.99, Category: "Pain Relief", Stock: 50, Image: pill},
		{ID: 2, Name: "Ibuprofen 400mg", Price: 18.50, Category: "Pain Relief", Stock: 45, Image: pill},
		{ID: 3, Name: "Aspirin 100mg", Price: 12.99, Category: "Pain Relief", Stock: 60, Image: pill},
		{ID: 4, Name: "Amoxicillin 500mg", Price: 25.99, Category: "Antibiotic", Stock: 30, Image: injectionImage},
		{ID: 5, Name: "Azithromycin 250mg", Price: 28.50, Category: "Antibiotic", Stock: 25, Image: injectionImage},
		{ID: 6, Name: "Cetirizine 10mg", Price: 8.99, Category: "Allergy", Stock: 70, Image: pill},
		{ID: 7, Name: "Loratadine 10mg", Price: 9.50, Category: "Allergy", Stock: 65, Image: pill},
		{ID: 8, Name: "Omeprazole 20mg", Price: 22.99, Category: "Digestive", Stock: 40, Image: pill},
		{ID: 9, Name: "Metformin 500mg", Price: 19.99, Category: "Diabetes", Stock: 35, Image: pill},
		{ID: 10, Name: "Atorvastatin 20mg", Price: 24.99, Category: "Cardiac", Stock: 30, Image: pill},
		{ID: 11, Name: "Vitamin D3 1000IU", Price: 14.99, Category: "Vitamins", Stock: 80, Image: pill},
		{ID: 12, Name: "Vitamin C 1000mg", Price: 11.99, Category: "Vitamins", Stock: 75, Image: pill},
	}
}
