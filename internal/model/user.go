// File: internal/model/user.go
package model

import "time"

// Role 是使用者角色，授權時只認得下列常數
type Role string

const (
	RoleAdmin Role = "admin"
	// RoleUser 是 token 未帶角色時的預設值
	RoleUser Role = "user"
)

// OrDefault 空角色視為 RoleUser
func (r Role) OrDefault() Role {
	if r == "" {
		return RoleUser
	}
	return r
}

type User struct {
	ID           string    `db:"id" bson:"_id" json:"id"`
	FullName     string    `db:"full_name" bson:"fullName" json:"fullName"`
	Email        string    `db:"email" bson:"email" json:"email"`
	Username     string    `db:"username" bson:"username" json:"username"`
	PasswordHash string    `db:"password_hash" bson:"passwordHash" json:"-"`
	Role         Role      `db:"role" bson:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" bson:"createdAt" json:"createdAt"`
}
