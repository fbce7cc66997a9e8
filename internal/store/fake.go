package store

import (
	"context"

	"healthcare-clinic/internal/model"
)

// FakeStore 以函式欄位模擬 Store，未設定的方法被呼叫時 panic
type FakeStore struct {
	CreateUserFn        func(ctx context.Context, u *model.User) error
	GetUserByIDFn       func(ctx context.Context, id string) (*model.User, error)
	GetUserByUsernameFn func(ctx context.Context, username string) (*model.User, error)
	UserExistsFn        func(ctx context.Context, username, email string) (bool, error)
	ListUsersByRoleFn   func(ctx context.Context, role model.Role) ([]model.User, error)
	CreateConsultFn     func(ctx context.Context, c *model.Consult) error
	ListConsultsFn      func(ctx context.Context) ([]model.Consult, error)
	CreateAppointmentFn func(ctx context.Context, a *model.Appointment) error
	ListAppointmentsFn  func(ctx context.Context) ([]model.Appointment, error)
	ListMedicinesFn     func(ctx context.Context) ([]model.Medicine, error)
	CreateMedicineFn    func(ctx context.Context, m *model.Medicine) error
	UpdateMedicineFn    func(ctx context.Context, id int, patch model.MedicinePatch) (*model.Medicine, error)
	DeleteMedicineFn    func(ctx context.Context, id int) error
	DecrementStockFn    func(ctx context.Context, id, qty int) (bool, error)
	SeedMedicinesFn     func(ctx context.Context, meds []model.Medicine) (int, error)
	CreatePaymentFn     func(ctx context.Context, p *model.Payment) error
	ListPaymentsFn      func(ctx context.Context) ([]model.Payment, error)
}

var _ Store = (*FakeStore)(nil)

func (f *FakeStore) CreateUser(ctx context.Context, u *model.User) error {
	if f.CreateUserFn != nil {
		return f.CreateUserFn(ctx, u)
	}
	panic("unexpected CreateUser")
}

func (f *FakeStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if f.GetUserByIDFn != nil {
		return f.GetUserByIDFn(ctx, id)
	}
	panic("unexpected GetUserByID")
}

func (f *FakeStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.GetUserByUsernameFn != nil {
		return f.GetUserByUsernameFn(ctx, username)
	}
	panic("unexpected GetUserByUsername")
}

func (f *FakeStore) UserExists(ctx context.Context, username, email string) (bool, error) {
	if f.UserExistsFn != nil {
		return f.UserExistsFn(ctx, username, email)
	}
	panic("unexpected UserExists")
}

func (f *FakeStore) ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if f.ListUsersByRoleFn != nil {
		return f.ListUsersByRoleFn(ctx, role)
	}
	panic("unexpected ListUsersByRole")
}

func (f *FakeStore) CreateConsult(ctx context.Context, c *model.Consult) error {
	if f.CreateConsultFn != nil {
		return f.CreateConsultFn(ctx, c)
	}
	panic("unexpected CreateConsult")
}

func (f *FakeStore) ListConsults(ctx context.Context) ([]model.Consult, error) {
	if f.ListConsultsFn != nil {
		return f.ListConsultsFn(ctx)
	}
	panic("unexpected ListConsults")
}

func (f *FakeStore) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	if f.CreateAppointmentFn != nil {
		return f.CreateAppointmentFn(ctx, a)
	}
	panic("unexpected CreateAppointment")
}

func (f *FakeStore) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	if f.ListAppointmentsFn != nil {
		return f.ListAppointmentsFn(ctx)
	}
	panic("unexpected ListAppointments")
}

func (f *FakeStore) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	if f.ListMedicinesFn != nil {
		return f.ListMedicinesFn(ctx)
	}
	panic("unexpected ListMedicines")
}

func (f *FakeStore) CreateMedicine(ctx context.Context, m *model.Medicine) error {
	if f.CreateMedicineFn != nil {
		return f.CreateMedicineFn(ctx, m)
	}
	panic("unexpected CreateMedicine")
}

func (f *FakeStore) UpdateMedicine(ctx context.Context, id int, patch model.MedicinePatch) (*model.Medicine, error) {
	if f.UpdateMedicineFn != nil {
		return f.UpdateMedicineFn(ctx, id, patch)
	}
	panic("unexpected UpdateMedicine")
}

func (f *FakeStore) DeleteMedicine(ctx context.Context, id int) error {
	if f.DeleteMedicineFn != nil {
		return f.DeleteMedicineFn(ctx, id)
	}
	panic("unexpected DeleteMedicine")
}

func (f *FakeStore) DecrementStock(ctx context.Context, id, qty int) (bool, error) {
	if f.DecrementStockFn != nil {
		return f.DecrementStockFn(ctx, id, qty)
	}
	panic("unexpected DecrementStock")
}

func (f *FakeStore) SeedMedicines(ctx context.Context, meds []model.Medicine) (int, error) {
	if f.SeedMedicinesFn != nil {
		return f.SeedMedicinesFn(ctx, meds)
	}
	panic("unexpected SeedMedicines")
}

func (f *FakeStore) CreatePayment(ctx context.Context, p *model.Payment) error {
	if f.CreatePaymentFn != nil {
		return f.CreatePaymentFn(ctx, p)
	}
	panic("unexpected CreatePayment")
}

func (f *FakeStore) ListPayments(ctx context.Context) ([]model.Payment, error) {
	if f.ListPaymentsFn != nil {
		return f.ListPaymentsFn(ctx)
	}
	panic("unexpected ListPayments")
}
