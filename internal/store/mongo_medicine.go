package store

import (
	"context"
	"errors"

	"healthcare-clinic/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	out := []model.Medicine{}
	if err := m.findAll(ctx, colMedicines, bson.M{}, bson.D{{Key: "id", Value: 1}}, &out); err != nil {
		return nil, mongoErr("ListMedicines", err)
	}
	return out, nil
}

// maxMedicineID 回傳目前最大 id，空集合為 0
func (m *Mongo) maxMedicineID(ctx context.Context) (int, error) {
	var last model.Medicine
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	err := m.db.Collection(colMedicines).FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return last.ID, nil
}

// CreateMedicine 的 id 唯一索引擋下並發時重複的 max+1，以 ErrConflict 回報
func (m *Mongo) CreateMedicine(ctx context.Context, med *model.Medicine) error {
	maxID, err := m.maxMedicineID(ctx)
	if err != nil {
		return mongoErr("CreateMedicine", err)
	}
	if med.Image == "" {
		med.Image = model.DefaultMedicineImage
	}
	med.ID = maxID + 1
	if _, err := m.db.Collection(colMedicines).InsertOne(ctx, med); err != nil {
		return mongoErr("CreateMedicine", err)
	}
	return nil
}

func (m *Mongo) UpdateMedicine(ctx context.Context, id int, patch model.MedicinePatch) (*model.Medicine, error) {
	set := bson.D{}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *patch.Price})
	}
	if patch.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *patch.Category})
	}
	if patch.Stock != nil {
		set = append(set, bson.E{Key: "stock", Value: *patch.Stock})
	}
	if patch.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *patch.Image})
	}

	med := &model.Medicine{}
	col := m.db.Collection(colMedicines)
	if len(set) == 0 {
		if err := col.FindOne(ctx, bson.M{"id": id}).Decode(med); err != nil {
			return nil, mongoErr("UpdateMedicine", err)
		}
		return med, nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.D{{Key: "$set", Value: set}}, opts).Decode(med)
	if err != nil {
		return nil, mongoErr("UpdateMedicine", err)
	}
	return med, nil
}

func (m *Mongo) DeleteMedicine(ctx context.Context, id int) error {
	res, err := m.db.Collection(colMedicines).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return mongoErr("DeleteMedicine", err)
	}
	if res.DeletedCount == 0 {
		return mongoErr("DeleteMedicine", mongo.ErrNoDocuments)
	}
	return nil
}

func (m *Mongo) DecrementStock(ctx context.Context, id, qty int) (bool, error) {
	res, err := m.db.Collection(colMedicines).UpdateOne(ctx,
		bson.M{"id": id, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}},
	)
	if err != nil {
		return false, mongoErr("DecrementStock", err)
	}
	return res.ModifiedCount > 0, nil
}

func (m *Mongo) SeedMedicines(ctx context.Context, meds []model.Medicine) (int, error) {
	err := m.db.Collection(colMedicines).FindOne(ctx, bson.M{}).Err()
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, mongoErr("SeedMedicines", err)
	}
	if len(meds) == 0 {
		return 0, nil
	}
	docs := make([]any, 0, len(meds))
	for _, med := range meds {
		docs = append(docs, med)
	}
	res, err := m.db.Collection(colMedicines).InsertMany(ctx, docs)
	if err != nil {
		return 0, mongoErr("SeedMedicines", err)
	}
	return len(res.InsertedIDs), nil
}
