package auth

import (
	"errors"
	"net/http"

	"healthcare-clinic/internal/api"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/service"
	"healthcare-clinic/internal/store"

	"github.com/labstack/echo/v4"
)

const invalidCredentials = "Invalid username or password"

// TokenIssuer 由 *service.TokenService 實作
type TokenIssuer interface {
	Issue(u model.User) (string, error)
}

// LoginHandler 使用 Username/Password 驗證並回傳 JWT
// @Summary     登入管理員
// @Description 內建帳號 admin/admin123 不查資料庫；其餘帳號以不分大小寫的 username 比對
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(st store.Store, tokens TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Missing credentials"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Missing credentials"})
		}

		var user model.User
		if service.IsBootstrapLogin(req.Username, req.Password) {
			user = service.BootstrapAdmin()
		} else {
			u, err := st.GetUserByUsername(c.Request().Context(), req.Username)
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: invalidCredentials})
			}
			if err != nil {
				c.Logger().Errorf("login: %v", err)
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Login failed"})
			}
			if err := service.ComparePassword(u.PasswordHash, req.Password); err != nil {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: invalidCredentials})
			}
			if u.Role == "" {
				u.Role = model.RoleAdmin
			}
			user = *u
		}

		token, err := tokens.Issue(user)
		if err != nil {
			c.Logger().Errorf("login: issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Login failed"})
		}
		return c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)})
	}
}
