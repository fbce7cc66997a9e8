package store

import (
	"context"

	"healthcare-clinic/internal/model"

	"go.mongodb.org/mongo-driver/bson"
)

func (m *Mongo) CreatePayment(ctx context.Context, p *model.Payment) error {
	if p.ID == "" {
		p.ID = newID()
	}
	if p.Date.IsZero() {
		p.Date = now()
	}
	if p.Items == nil {
		p.Items = []model.PaymentItem{}
	}
	if _, err := m.db.Collection(colPayments).InsertOne(ctx, p); err != nil {
		return mongoErr("CreatePayment", err)
	}
	return nil
}

func (m *Mongo) ListPayments(ctx context.Context) ([]model.Payment, error) {
	out := []model.Payment{}
	if err := m.findAll(ctx, colPayments, bson.M{}, bson.D{{Key: "date", Value: -1}}, &out); err != nil {
		return nil, mongoErr("ListPayments", err)
	}
	return out, nil
}
