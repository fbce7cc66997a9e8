package consults

import (
	"net/http"

	"healthcare-clinic/internal/api"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateConsultHandler 網站表單送出的諮詢，不需登入
// @Summary     建立線上諮詢
// @Tags        consults
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateConsultRequest true "諮詢內容"
// @Success     201  {object} dto.ItemResponse[model.Consult]
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /consults [post]
func CreateConsultHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateConsultRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.MissingFieldsMessage})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.ValidationMessage(err)})
		}

		consult := &model.Consult{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Specialty: req.Specialty,
			Symptoms:  req.Symptoms,
		}
		if err := st.CreateConsult(c.Request().Context(), consult); err != nil {
			c.Logger().Errorf("create consult: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error recording consultation"})
		}
		return c.JSON(http.StatusCreated, dto.ItemResponse[model.Consult]{Message: "Consultation recorded", Item: *consult})
	}
}

// ListConsultsHandler 依日期新到舊列出諮詢
// @Summary     列出線上諮詢
// @Tags        consults
// @Produce     json
// @Success     200 {object} dto.ListResponse[model.Consult]
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /consults [get]
func ListConsultsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := st.ListConsults(c.Request().Context())
		if err != nil {
			c.Logger().Errorf("list consults: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error fetching consultations"})
		}
		return c.JSON(http.StatusOK, dto.NewListResponse(items))
	}
}
