package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"healthcare-clinic/internal/api"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/service"
	"healthcare-clinic/internal/store"

	"github.com/labstack/echo/v4"
)

const userExists = "Username or email already exists"

// SignupHandler 以註冊碼建立管理員帳號
// @Summary     註冊管理員
// @Description signupCode 為空時停用註冊 (503)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.SignupRequest true "註冊資料"
// @Success     201  {object} dto.MessageResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Failure     503  {object} dto.HTTPError
// @Router      /auth/signup [post]
func SignupHandler(st store.Store, signupCode string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.MissingFieldsMessage})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.ValidationMessage(err)})
		}
		if signupCode == "" {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "Signup disabled by server"})
		}
		if subtle.ConstantTimeCompare([]byte(req.Code), []byte(signupCode)) != 1 {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Invalid admin signup code"})
		}

		ctx := c.Request().Context()
		exists, err := st.UserExists(ctx, req.Username, req.Email)
		if err != nil {
			c.Logger().Errorf("signup: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Signup failed"})
		}
		if exists {
			return c.JSON(http.StatusConflict, dto.HTTPError{Message: userExists})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			c.Logger().Errorf("signup: hash: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Signup failed"})
		}
		u := &model.User{
			FullName:     req.FullName,
			Email:        strings.ToLower(req.Email),
			Username:     req.Username,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
		}
		if err := st.CreateUser(ctx, u); err != nil {
			// 兩個同名註冊同時通過 UserExists 時由唯一索引擋下
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: userExists})
			}
			c.Logger().Errorf("signup: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Signup failed"})
		}
		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Signup successful"})
	}
}
