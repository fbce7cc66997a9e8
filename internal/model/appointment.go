// File: internal/model/appointment.go
package model

import "time"

// Appointment 的 Date / Time 保留使用者選擇的原始字串 (例如 2025-06-01 / 10:30)
type Appointment struct {
	ID        string    `db:"id" bson:"_id" json:"id"`
	Name      string    `db:"name" bson:"name" json:"name"`
	Email     string    `db:"email" bson:"email" json:"email"`
	Phone     string    `db:"phone" bson:"phone" json:"phone"`
	Doctor    string    `db:"doctor" bson:"doctor" json:"doctor"`
	Date      string    `db:"date" bson:"date" json:"date"`
	Time      string    `db:"time" bson:"time" json:"time"`
	CreatedAt time.Time `db:"created_at" bson:"createdAt" json:"createdAt"`
}
