package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type stubPinger struct {
	pingErr      error
	disconnected bool
}

func (s *stubPinger) Ping(context.Context, *readpref.ReadPref) error { return s.pingErr }
func (s *stubPinger) Disconnect(context.Context) error {
	s.disconnected = true
	return nil
}

func TestNewMongoClient(t *testing.T) {
	orig := mongoConnect
	t.Cleanup(func() { mongoConnect = orig })

	t.Run("connect error", func(t *testing.T) {
		mongoConnect = func(context.Context, string) (*mongo.Client, mongoPinger, error) {
			return nil, nil, errors.New("connect")
		}
		c, err := NewMongoClient(context.Background(), "mongodb://x")
		require.Error(t, err)
		require.Nil(t, c)
	})

	t.Run("ping error disconnects", func(t *testing.T) {
		p := &stubPinger{pingErr: errors.New("ping")}
		mongoConnect = func(context.Context, string) (*mongo.Client, mongoPinger, error) {
			return &mongo.Client{}, p, nil
		}
		c, err := NewMongoClient(context.Background(), "mongodb://x")
		require.Error(t, err)
		require.Nil(t, c)
		require.True(t, p.disconnected)
	})

	t.Run("success", func(t *testing.T) {
		var gotURI string
		want := &mongo.Client{}
		mongoConnect = func(_ context.Context, uri string) (*mongo.Client, mongoPinger, error) {
			gotURI = uri
			return want, &stubPinger{}, nil
		}
		c, err := NewMongoClient(context.Background(), "mongodb://db:27017")
		require.NoError(t, err)
		require.Same(t, want, c)
		require.Equal(t, "mongodb://db:27017", gotURI)
	})
}
