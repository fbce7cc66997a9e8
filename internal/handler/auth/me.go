package auth

import (
	"errors"
	"net/http"
	"time"

	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/middleware"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/service"
	"healthcare-clinic/internal/store"

	"github.com/labstack/echo/v4"
)

var timeNow = time.Now

// MeHandler 取得目前登入者
// @Summary     取得目前登入者
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.PrincipalFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "No token provided"})
		}
		if claims.ID == service.BootstrapID {
			return c.JSON(http.StatusOK, dto.NewUserResponse(service.BootstrapAdmin()))
		}

		u, err := st.GetUserByID(c.Request().Context(), claims.ID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "User not found"})
		}
		if err != nil {
			c.Logger().Errorf("me: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error fetching user"})
		}
		if u.Role == "" {
			u.Role = model.RoleAdmin
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(*u))
	}
}

// ListAdminsHandler 列出管理員，內建帳號永遠排第一
// @Summary     列出管理員
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.ListResponse[dto.AdminResponse]
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /admins [get]
func ListAdminsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := st.ListUsersByRole(c.Request().Context(), model.RoleAdmin)
		if err != nil {
			c.Logger().Errorf("list admins: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error fetching admins"})
		}

		bootstrap := service.BootstrapAdmin()
		bootstrap.CreatedAt = timeNow().UTC()
		items := make([]dto.AdminResponse, 0, len(users)+1)
		items = append(items, dto.NewAdminResponse(bootstrap))
		for _, u := range users {
			items = append(items, dto.NewAdminResponse(u))
		}
		return c.JSON(http.StatusOK, dto.NewListResponse(items))
	}
}
