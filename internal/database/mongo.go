// File: internal/database/mongo.go
package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoPinger 是 NewMongoClient 需要的 client 方法，便於測試替換
type mongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
	Disconnect(ctx context.Context) error
}

var mongoConnect = func(ctx context.Context, uri string) (*mongo.Client, mongoPinger, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	return client, client, nil
}

// NewMongoClient 連線到 MongoDB，並在 5 秒內完成 Ping 測試
func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, pinger, err := mongoConnect(ctx, uri)
	if err != nil {
		return nil, err
	}
	if err := pinger.Ping(ctx, readpref.Primary()); err != nil {
		_ = pinger.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
