package store

import (
	"context"
	"errors"
	"fmt"

	"healthcare-clinic/internal/database"
	"healthcare-clinic/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation 是 Postgres unique_violation 的 SQLSTATE
const pgUniqueViolation = "23505"

// Postgres 以 database.DB 實作 Store
type Postgres struct {
	db database.DB
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db database.DB) *Postgres {
	return &Postgres{db: db}
}

// pgErr 將 driver 錯誤轉為 ErrNotFound / ErrConflict 並附上操作名稱
func pgErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) && pe.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

const userColumns = `id, full_name, email, username, password_hash, role, created_at`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	)
}

func (p *Postgres) CreateUser(ctx context.Context, u *model.User) error {
	assignUser(u)
	_, err := p.db.Exec(ctx,
		`INSERT INTO users (id, full_name, email, username, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID,
		u.FullName,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.Role,
		u.CreatedAt,
	)
	if err != nil {
		return pgErr("CreateUser", err)
	}
	return nil
}

func (p *Postgres) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, pgErr("GetUserByID", err)
	}
	return u, nil
}

func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`,
		username,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, pgErr("GetUserByUsername", err)
	}
	return u, nil
}

func (p *Postgres) UserExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := p.db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM users
		     WHERE lower(username) = lower($1) OR lower(email) = lower($2)
		 )`,
		username,
		email,
	).Scan(&exists)
	if err != nil {
		return false, pgErr("UserExists", err)
	}
	return exists, nil
}

func (p *Postgres) ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := p.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at`,
		role,
	)
	if err != nil {
		return nil, pgErr("ListUsersByRole", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, pgErr("ListUsersByRole", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, pgErr("ListUsersByRole", err)
	}
	return users, nil
}

func (p *Postgres) CreateConsult(ctx context.Context, c *model.Consult) error {
	if c.ID == "" {
		c.ID = newID()
	}
	if c.Date.IsZero() {
		c.Date = now()
	}
	_, err := p.db.Exec(ctx,
		`INSERT INTO consults (id, name, email, phone, specialty, symptoms, date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Email, c.Phone, c.Specialty, c.Symptoms, c.Date,
	)
	if err != nil {
		return pgErr("CreateConsult", err)
	}
	return nil
}

func (p *Postgres) ListConsults(ctx context.Context) ([]model.Consult, error) {
	rows, err := p.db.Query(ctx,
		`SELECT id, name, email, phone, specialty, symptoms, date
		 FROM consults ORDER BY date DESC`,
	)
	if err != nil {
		return nil, pgErr("ListConsults", err)
	}
	defer rows.Close()

	out := []model.Consult{}
	for rows.Next() {
		var c model.Consult
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Specialty, &c.Symptoms, &c.Date); err != nil {
			return nil, pgErr("ListConsults", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, pgErr("ListConsults", err)
	}
	return out, nil
}

func (p *Postgres) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	if a.ID == "" {
		a.ID = newID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now()
	}
	_, err := p.db.Exec(ctx,
		`INSERT INTO appointments (id, name, email, phone, doctor, date, time, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.Name, a.Email, a.Phone, a.Doctor, a.Date, a.Time, a.CreatedAt,
	)
	if err != nil {
		return pgErr("CreateAppointment", err)
	}
	return nil
}

func (p *Postgres) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := p.db.Query(ctx,
		`SELECT id, name, email, phone, doctor, date, time, created_at
		 FROM appointments ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, pgErr("ListAppointments", err)
	}
	defer rows.Close()

	out := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Doctor, &a.Date, &a.Time, &a.CreatedAt); err != nil {
			return nil, pgErr("ListAppointments", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, pgErr("ListAppointments", err)
	}
	return out, nil
}
