package handler

import (
	"net/http"

	"healthcare-clinic/internal/dto"

	"github.com/labstack/echo/v4"
)

// IndexHandler 列出主要 API 端點
// @Summary     API index
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.IndexResponse
// @Router      / [get]
func IndexHandler() echo.HandlerFunc {
	resp := dto.IndexResponse{
		Message: "HealthCare API is running",
		Health:  "/api/health",
		Auth: map[string]string{
			"signup": "/api/auth/signup",
			"login":  "/api/auth/login",
			"me":     "/api/auth/me",
			"admins": "/api/admins",
		},
		Data: map[string]string{
			"consults":     "/api/consults",
			"appointments": "/api/appointments",
			"medicines":    "/api/medicines",
			"payments":     "/api/payments",
		},
		AI:   map[string]string{"chat": "/api/ai/chat"},
		Docs: "/swagger/index.html",
	}
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, resp)
	}
}
