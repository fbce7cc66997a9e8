// File: internal/model/consult.go
package model

import "time"

type Consult struct {
	ID        string    `db:"id" bson:"_id" json:"id"`
	Name      string    `db:"name" bson:"name" json:"name"`
	Email     string    `db:"email" bson:"email" json:"email"`
	Phone     string    `db:"phone" bson:"phone" json:"phone"`
	Specialty string    `db:"specialty" bson:"specialty" json:"specialty"`
	Symptoms  string    `db:"symptoms" bson:"symptoms" json:"symptoms"`
	Date      time.Time `db:"date" bson:"date" json:"date"`
}
