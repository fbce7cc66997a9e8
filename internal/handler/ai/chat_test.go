package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthcare-clinic/internal/chat"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

type fakeCompleter struct {
	fn func(ctx context.Context, messages []chat.Message) (string, error)
}

func (f fakeCompleter) Complete(ctx context.Context, messages []chat.Message) (string, error) {
	return f.fn(ctx, messages)
}

func newCtx(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validBody = `{"messages":[{"role":"system","content":"be brief"},{"role":"user","content":"I have a fever"}]}`

func TestChatHandler(t *testing.T) {
	t.Run("empty messages", func(t *testing.T) {
		ctx, rec := newCtx(`{"messages":[]}`)
		require.NoError(t, ChatHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "messages array is required")
	})

	t.Run("missing messages", func(t *testing.T) {
		ctx, rec := newCtx(`{}`)
		require.NoError(t, ChatHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no provider key", func(t *testing.T) {
		ctx, rec := newCtx(validBody)
		require.NoError(t, ChatHandler(nil)(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("success forwards messages", func(t *testing.T) {
		var got []chat.Message
		fc := fakeCompleter{fn: func(_ context.Context, m []chat.Message) (string, error) {
			got = m
			return "Rest and drink fluids.", nil
		}}
		ctx, rec := newCtx(validBody)
		require.NoError(t, ChatHandler(fc)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"content":"Rest and drink fluids."}`, rec.Body.String())
		require.Equal(t, []chat.Message{{Role: "system", Content: "be brief"}, {Role: "user", Content: "I have a fever"}}, got)
	})

	t.Run("upstream error", func(t *testing.T) {
		fc := fakeCompleter{fn: func(context.Context, []chat.Message) (string, error) {
			return "", fmt.Errorf("%w: status 429", chat.ErrUpstream)
		}}
		ctx, rec := newCtx(validBody)
		require.NoError(t, ChatHandler(fc)(ctx))
		require.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("other error", func(t *testing.T) {
		fc := fakeCompleter{fn: func(context.Context, []chat.Message) (string, error) {
			return "", errors.New("dial tcp")
		}}
		ctx, rec := newCtx(validBody)
		require.NoError(t, ChatHandler(fc)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "AI chat failed")
	})
}
