package store

import (
	"context"

	"healthcare-clinic/internal/model"

	"github.com/jackc/pgx/v5"
)

const medicineColumns = `id, name, price, category, stock, image`

func scanMedicine(row pgx.Row, m *model.Medicine) error {
	return row.Scan(&m.ID, &m.Name, &m.Price, &m.Category, &m.Stock, &m.Image)
}

func (p *Postgres) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	rows, err := p.db.Query(ctx, `SELECT `+medicineColumns+` FROM medicines ORDER BY id`)
	if err != nil {
		return nil, pgErr("ListMedicines", err)
	}
	defer rows.Close()

	out := []model.Medicine{}
	for rows.Next() {
		var m model.Medicine
		if err := scanMedicine(rows, &m); err != nil {
			return nil, pgErr("ListMedicines", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, pgErr("ListMedicines", err)
	}
	return out, nil
}

// CreateMedicine 在同一句 INSERT 內計算 max(id)+1；並發衝突時回傳 ErrConflict
func (p *Postgres) CreateMedicine(ctx context.Context, m *model.Medicine) error {
	if m.Image == "" {
		m.Image = model.DefaultMedicineImage
	}
	row := p.db.QueryRow(ctx,
		`INSERT INTO medicines (id, name, price, category, stock, image)
		 SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5 FROM medicines
		 RETURNING id`,
		m.Name, m.Price, m.Category, m.Stock, m.Image,
	)
	if err := row.Scan(&m.ID); err != nil {
		return pgErr("CreateMedicine", err)
	}
	return nil
}

// UpdateMedicine 以 COALESCE 合併 patch，nil 欄位保留原值
func (p *Postgres) UpdateMedicine(ctx context.Context, id int, patch model.MedicinePatch) (*model.Medicine, error) {
	row := p.db.QueryRow(ctx,
		`UPDATE medicines SET
		     name = COALESCE($2, name),
		     price = COALESCE($3, price),
		     category = COALESCE($4, category),
		     stock = COALESCE($5, stock),
		     image = COALESCE($6, image)
		 WHERE id = $1
		 RETURNING `+medicineColumns,
		id, patch.Name, patch.Price, patch.Category, patch.Stock, patch.Image,
	)
	m := &model.Medicine{}
	if err := scanMedicine(row, m); err != nil {
		return nil, pgErr("UpdateMedicine", err)
	}
	return m, nil
}

func (p *Postgres) DeleteMedicine(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return pgErr("DeleteMedicine", err)
	}
	if tag.RowsAffected() == 0 {
		return pgErr("DeleteMedicine", pgx.ErrNoRows)
	}
	return nil
}

func (p *Postgres) DecrementStock(ctx context.Context, id, qty int) (bool, error) {
	tag, err := p.db.Exec(ctx,
		`UPDATE medicines SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		id, qty,
	)
	if err != nil {
		return false, pgErr("DecrementStock", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (p *Postgres) SeedMedicines(ctx context.Context, meds []model.Medicine) (int, error) {
	var count int
	if err := p.db.QueryRow(ctx, `SELECT count(*) FROM medicines`).Scan(&count); err != nil {
		return 0, pgErr("SeedMedicines", err)
	}
	if count > 0 {
		return 0, nil
	}
	inserted := 0
	for _, m := range meds {
		tag, err := p.db.Exec(ctx,
			`INSERT INTO medicines (id, name, price, category, stock, image)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (id) DO NOTHING`,
			m.ID, m.Name, m.Price, m.Category, m.Stock, m.Image,
		)
		if err != nil {
			return inserted, pgErr("SeedMedicines", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
