package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"healthcare-clinic/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection 名稱
const (
	colUsers        = "users"
	colConsults     = "consults"
	colAppointments = "appointments"
	colMedicines    = "medicines"
	colPayments     = "payments"
)

// Mongo 以 MongoDB 實作 Store，藥品以數值 id 欄位定址而非 _id
type Mongo struct {
	db *mongo.Database
}

var _ Store = (*Mongo)(nil)

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func mongoErr(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// caseInsensitive 產生完全比對且不分大小寫的 regex
func caseInsensitive(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}

// EnsureIndexes 建立唯一索引；users 使用 strength 2 collation 做不分大小寫的唯一性
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ci := options.Index().SetUnique(true).SetCollation(&options.Collation{Locale: "en", Strength: 2})
	if _, err := m.db.Collection(colUsers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: ci},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: ci},
	}); err != nil {
		return mongoErr("EnsureIndexes", err)
	}
	if _, err := m.db.Collection(colMedicines).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return mongoErr("EnsureIndexes", err)
	}
	if _, err := m.db.Collection(colPayments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return mongoErr("EnsureIndexes", err)
	}
	return nil
}

func (m *Mongo) CreateUser(ctx context.Context, u *model.User) error {
	assignUser(u)
	if _, err := m.db.Collection(colUsers).InsertOne(ctx, u); err != nil {
		return mongoErr("CreateUser", err)
	}
	return nil
}

func (m *Mongo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	if err := m.db.Collection(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(u); err != nil {
		return nil, mongoErr("GetUserByID", err)
	}
	return u, nil
}

func (m *Mongo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	u := &model.User{}
	err := m.db.Collection(colUsers).
		FindOne(ctx, bson.M{"username": caseInsensitive(username)}).
		Decode(u)
	if err != nil {
		return nil, mongoErr("GetUserByUsername", err)
	}
	return u, nil
}

func (m *Mongo) UserExists(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": caseInsensitive(username)},
		bson.M{"email": caseInsensitive(email)},
	}}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := m.db.Collection(colUsers).FindOne(ctx, filter, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, mongoErr("UserExists", err)
	}
	return true, nil
}

func (m *Mongo) ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	users := []model.User{}
	if err := m.findAll(ctx, colUsers, bson.M{"role": role}, bson.D{{Key: "createdAt", Value: 1}}, &users); err != nil {
		return nil, mongoErr("ListUsersByRole", err)
	}
	return users, nil
}

func (m *Mongo) CreateConsult(ctx context.Context, c *model.Consult) error {
	if c.ID == "" {
		c.ID = newID()
	}
	if c.Date.IsZero() {
		c.Date = now()
	}
	if _, err := m.db.Collection(colConsults).InsertOne(ctx, c); err != nil {
		return mongoErr("CreateConsult", err)
	}
	return nil
}

func (m *Mongo) ListConsults(ctx context.Context) ([]model.Consult, error) {
	out := []model.Consult{}
	if err := m.findAll(ctx, colConsults, bson.M{}, bson.D{{Key: "date", Value: -1}}, &out); err != nil {
		return nil, mongoErr("ListConsults", err)
	}
	return out, nil
}

func (m *Mongo) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	if a.ID == "" {
		a.ID = newID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now()
	}
	if _, err := m.db.Collection(colAppointments).InsertOne(ctx, a); err != nil {
		return mongoErr("CreateAppointment", err)
	}
	return nil
}

func (m *Mongo) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	out := []model.Appointment{}
	if err := m.findAll(ctx, colAppointments, bson.M{}, bson.D{{Key: "createdAt", Value: -1}}, &out); err != nil {
		return nil, mongoErr("ListAppointments", err)
	}
	return out, nil
}

// findAll 依 sort 排序讀出整個結果集到 out (slice 指標)
func (m *Mongo) findAll(ctx context.Context, col string, filter any, sort bson.D, out any) error {
	cur, err := m.db.Collection(col).Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}
