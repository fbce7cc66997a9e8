// Package store 封裝診所資料的持久化，提供 Postgres 與 MongoDB 兩種實作
package store

import (
	"context"
	"errors"
	"time"

	"healthcare-clinic/internal/model"

	"github.com/google/uuid"
)

var (
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("not found")
	// ErrConflict 違反唯一鍵
	ErrConflict = errors.New("conflict")
)

// 測試可覆寫
var (
	newID = uuid.NewString
	now   = func() time.Time { return time.Now().UTC() }
)

// Store 是 handler 依賴的資料存取介面
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	// GetUserByUsername 以不分大小寫的方式比對 username
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// UserExists 回報 username 或 email (不分大小寫) 是否已被使用
	UserExists(ctx context.Context, username, email string) (bool, error)
	ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error)

	CreateConsult(ctx context.Context, c *model.Consult) error
	ListConsults(ctx context.Context) ([]model.Consult, error)

	CreateAppointment(ctx context.Context, a *model.Appointment) error
	ListAppointments(ctx context.Context) ([]model.Appointment, error)

	ListMedicines(ctx context.Context) ([]model.Medicine, error)
	// CreateMedicine 指派 id = 目前最大 id + 1
	CreateMedicine(ctx context.Context, m *model.Medicine) error
	UpdateMedicine(ctx context.Context, id int, patch model.MedicinePatch) (*model.Medicine, error)
	DeleteMedicine(ctx context.Context, id int) error
	// DecrementStock 僅在庫存 >= qty 時扣除，回傳是否有扣除
	DecrementStock(ctx context.Context, id, qty int) (bool, error)
	// SeedMedicines 只在藥品表為空時寫入，回傳寫入筆數
	SeedMedicines(ctx context.Context, meds []model.Medicine) (int, error)

	CreatePayment(ctx context.Context, p *model.Payment) error
	ListPayments(ctx context.Context) ([]model.Payment, error)
}

// assignUser 補上 id 與建立時間
func assignUser(u *model.User) {
	if u.ID == "" {
		u.ID = newID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now()
	}
}
