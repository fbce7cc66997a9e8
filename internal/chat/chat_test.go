package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string, inspect func(map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		if inspect != nil {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			inspect(req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	msgs := []Message{{Role: "user", Content: "I have a headache"}}

	t.Run("success trims content", func(t *testing.T) {
		srv := newServer(t, http.StatusOK,
			`{"choices":[{"index":0,"message":{"role":"assistant","content":"  Rest and hydrate.  "}}]}`,
			func(req map[string]any) {
				require.Equal(t, "gpt-3.5-turbo", req["model"])
				require.InDelta(t, 0.3, req["temperature"], 0.0001)
				require.EqualValues(t, 300, req["max_tokens"])
				require.Len(t, req["messages"], 1)
			})
		out, err := NewOpenAI("key", srv.URL+"/v1").Complete(ctx, msgs)
		require.NoError(t, err)
		require.Equal(t, "Rest and hydrate.", out)
	})

	t.Run("empty content falls back", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{"choices":[]}`, nil)
		out, err := NewOpenAI("key", srv.URL+"/v1").Complete(ctx, msgs)
		require.NoError(t, err)
		require.Equal(t, EmptyReply, out)
	})

	t.Run("upstream error", func(t *testing.T) {
		srv := newServer(t, http.StatusTooManyRequests,
			`{"error":{"message":"rate limited","type":"requests"}}`, nil)
		_, err := NewOpenAI("key", srv.URL+"/v1").Complete(ctx, msgs)
		require.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("upstream non json error", func(t *testing.T) {
		srv := newServer(t, http.StatusBadGateway, `oops`, nil)
		_, err := NewOpenAI("key", srv.URL+"/v1").Complete(ctx, msgs)
		require.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("transport error is not upstream", func(t *testing.T) {
		_, err := NewOpenAI("key", "http://127.0.0.1:1/v1").Complete(ctx, msgs)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUpstream)
	})
}
