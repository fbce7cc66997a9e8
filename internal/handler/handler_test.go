package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcare-clinic/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func serve(h echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestHealthHandler(t *testing.T) {
	rec := serve(HealthHandler())
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestFaviconHandler(t *testing.T) {
	rec := serve(FaviconHandler())
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestIndexHandler(t *testing.T) {
	rec := serve(IndexHandler())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.IndexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "HealthCare API is running", resp.Message)
	require.Equal(t, "/api/health", resp.Health)
	require.Equal(t, "/api/auth/login", resp.Auth["login"])
	require.Equal(t, "/api/medicines", resp.Data["medicines"])
}
