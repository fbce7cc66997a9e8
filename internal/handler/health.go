package handler

import (
	"net/http"

	"healthcare-clinic/internal/dto"

	"github.com/labstack/echo/v4"
)

// HealthHandler 存活檢查，client 以此探測可用的 API 埠
// @Summary     Health Check
// @Description 永遠回傳 {"ok": true}
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.HealthResponse{OK: true})
	}
}

// FaviconHandler 避免瀏覽器對 /favicon.ico 產生 404
func FaviconHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}
}
