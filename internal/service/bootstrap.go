package service

import (
	"time"

	"healthcare-clinic/internal/model"
)

// 內建管理員，不落地儲存
const (
	BootstrapUsername = "admin"
	BootstrapPassword = "admin123"
	BootstrapID       = "demo"
)

// BootstrapAdmin 回傳內建管理員的使用者資料
func BootstrapAdmin() model.User {
	return model.User{
		ID:        BootstrapID,
		FullName:  "Default Admin",
		Email:     "demo@example.com",
		Username:  BootstrapUsername,
		Role:      model.RoleAdmin,
		CreatedAt: time.Unix(0, 0).UTC(),
	}
}

// IsBootstrapLogin 比對內建帳密，大小寫敏感
func IsBootstrapLogin(username, password string) bool {
	return username == BootstrapUsername && password == BootstrapPassword
}
