package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/service"
	"healthcare-clinic/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, Deps{Store: &store.FakeStore{}, Tokens: service.NewTokenService("s", time.Hour)})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /favicon.ico",
		http.MethodGet + " /api",
		http.MethodGet + " /api/",
		http.MethodGet + " /api/health",
		http.MethodPost + " /api/auth/signup",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/me",
		http.MethodGet + " /api/admins",
		http.MethodPost + " /api/consults",
		http.MethodGet + " /api/consults",
		http.MethodPost + " /api/appointments",
		http.MethodGet + " /api/appointments",
		http.MethodGet + " /api/medicines",
		http.MethodPost + " /api/medicines",
		http.MethodPut + " /api/medicines/:id",
		http.MethodDelete + " /api/medicines/:id",
		http.MethodPost + " /api/payments",
		http.MethodGet + " /api/payments",
		http.MethodPost + " /api/ai/chat",
	}

	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestRouteGuards(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	st := &store.FakeStore{
		ListMedicinesFn: func(context.Context) ([]model.Medicine, error) {
			return []model.Medicine{{ID: 1, Name: "Paracetamol 500mg"}}, nil
		},
		ListConsultsFn: func(context.Context) ([]model.Consult, error) { return nil, nil },
		GetUserByIDFn: func(context.Context, string) (*model.User, error) {
			return nil, store.ErrNotFound
		},
	}
	e := echo.New()
	Setup(e, Deps{Store: st, Tokens: tokens})

	do := func(method, path, token string) int {
		req := httptest.NewRequest(method, path, strings.NewReader(""))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api", ""))
	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api/", ""))
	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api/health", ""))
	require.Equal(t, http.StatusNoContent, do(http.MethodGet, "/favicon.ico", ""))
	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api/medicines", ""))
	require.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/consults", ""))
	require.Equal(t, http.StatusUnauthorized, do(http.MethodDelete, "/api/medicines/1", "garbage"))

	token, err := tokens.Issue(service.BootstrapAdmin())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api/consults", token))

	// 簽章有效但角色不是 admin
	user, err := tokens.Issue(model.User{ID: "u1", Username: "bob", Role: model.RoleUser})
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/consults", user))

	nurse, err := tokens.Issue(model.User{ID: "u2", Username: "nurse", Role: "nurse"})
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/payments", nurse))

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "u3", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/consults", noRole))
	require.Equal(t, http.StatusForbidden, do(http.MethodDelete, "/api/medicines/1", noRole))

	// 只需登入的路由不檢查角色
	require.Equal(t, http.StatusNotFound, do(http.MethodGet, "/api/auth/me", noRole))
}
