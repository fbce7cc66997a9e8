package store

import (
	"context"

	"healthcare-clinic/internal/model"

	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, transaction_id, customer_name, customer_email, customer_phone,
	delivery_address, payment_method, items, total_amount, card_number, expiry_date, cvv, status, date`

func scanPayment(row pgx.Row, p *model.Payment) error {
	return row.Scan(
		&p.ID,
		&p.TransactionID,
		&p.CustomerName,
		&p.CustomerEmail,
		&p.CustomerPhone,
		&p.DeliveryAddress,
		&p.PaymentMethod,
		&p.Items,
		&p.TotalAmount,
		&p.CardNumber,
		&p.ExpiryDate,
		&p.CVV,
		&p.Status,
		&p.Date,
	)
}

// CreatePayment 只寫入呼叫端已遮罩過的卡片資料
func (p *Postgres) CreatePayment(ctx context.Context, pay *model.Payment) error {
	if pay.ID == "" {
		pay.ID = newID()
	}
	if pay.Date.IsZero() {
		pay.Date = now()
	}
	if pay.Items == nil {
		pay.Items = []model.PaymentItem{}
	}
	_, err := p.db.Exec(ctx,
		`INSERT INTO payments (`+paymentColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		pay.ID,
		pay.TransactionID,
		pay.CustomerName,
		pay.CustomerEmail,
		pay.CustomerPhone,
		pay.DeliveryAddress,
		pay.PaymentMethod,
		pay.Items,
		pay.TotalAmount,
		pay.CardNumber,
		pay.ExpiryDate,
		pay.CVV,
		pay.Status,
		pay.Date,
	)
	if err != nil {
		return pgErr("CreatePayment", err)
	}
	return nil
}

func (p *Postgres) ListPayments(ctx context.Context) ([]model.Payment, error) {
	rows, err := p.db.Query(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY date DESC`)
	if err != nil {
		return nil, pgErr("ListPayments", err)
	}
	defer rows.Close()

	out := []model.Payment{}
	for rows.Next() {
		var pay model.Payment
		if err := scanPayment(rows, &pay); err != nil {
			return nil, pgErr("ListPayments", err)
		}
		out = append(out, pay)
	}
	if err := rows.Err(); err != nil {
		return nil, pgErr("ListPayments", err)
	}
	return out, nil
}
