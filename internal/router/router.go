package router

import (
	"github.com/labstack/echo/v4"

	"healthcare-clinic/internal/catalog"
	"healthcare-clinic/internal/chat"
	"healthcare-clinic/internal/handler"
	"healthcare-clinic/internal/handler/ai"
	"healthcare-clinic/internal/handler/appointments"
	"healthcare-clinic/internal/handler/auth"
	"healthcare-clinic/internal/handler/consults"
	"healthcare-clinic/internal/handler/medicines"
	"healthcare-clinic/internal/handler/payments"
	"healthcare-clinic/internal/middleware"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/service"
	"healthcare-clinic/internal/store"
)

// Deps 是註冊路由所需的依賴
// Completer 為 nil 時 /api/ai/chat 回 503
type Deps struct {
	Store      store.Store
	Catalog    *catalog.Cache
	Tokens     *service.TokenService
	SignupCode string
	Completer  chat.Completer
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	requireAuth := middleware.RequireAuth(d.Tokens)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)

	e.GET("/favicon.ico", handler.FaviconHandler())

	api := e.Group("/api")
	api.GET("", handler.IndexHandler())
	api.GET("/", handler.IndexHandler())
	api.GET("/health", handler.HealthHandler())

	// 管理員註冊與登入
	api.POST("/auth/signup", auth.SignupHandler(d.Store, d.SignupCode))
	api.POST("/auth/login", auth.LoginHandler(d.Store, d.Tokens))
	api.GET("/auth/me", auth.MeHandler(d.Store), requireAuth)
	api.GET("/admins", auth.ListAdminsHandler(d.Store), requireAuth, requireAdmin)

	// 公開表單寫入，列表僅限管理員
	api.POST("/consults", consults.CreateConsultHandler(d.Store))
	api.GET("/consults", consults.ListConsultsHandler(d.Store), requireAuth, requireAdmin)
	api.POST("/appointments", appointments.CreateAppointmentHandler(d.Store))
	api.GET("/appointments", appointments.ListAppointmentsHandler(d.Store), requireAuth, requireAdmin)

	api.GET("/medicines", medicines.ListMedicinesHandler(d.Store, d.Catalog))
	api.POST("/medicines", medicines.CreateMedicineHandler(d.Store, d.Catalog), requireAuth, requireAdmin)
	api.PUT("/medicines/:id", medicines.UpdateMedicineHandler(d.Store, d.Catalog), requireAuth, requireAdmin)
	api.DELETE("/medicines/:id", medicines.DeleteMedicineHandler(d.Store, d.Catalog), requireAuth, requireAdmin)

	api.POST("/payments", payments.CreatePaymentHandler(d.Store, d.Catalog))
	api.GET("/payments", payments.ListPaymentsHandler(d.Store), requireAuth, requireAdmin)

	api.POST("/ai/chat", ai.ChatHandler(d.Completer))
}
