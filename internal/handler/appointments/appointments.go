package appointments

import (
	"net/http"

	"healthcare-clinic/internal/api"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateAppointmentHandler 預約看診，不需登入
// @Summary     預約看診
// @Tags        appointments
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateAppointmentRequest true "預約資料"
// @Success     201  {object} dto.ItemResponse[model.Appointment]
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /appointments [post]
func CreateAppointmentHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateAppointmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.MissingFieldsMessage})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.ValidationMessage(err)})
		}

		appt := &model.Appointment{
			Name:   req.Name,
			Email:  req.Email,
			Phone:  req.Phone,
			Doctor: req.Doctor,
			Date:   req.Date,
			Time:   req.Time,
		}
		if err := st.CreateAppointment(c.Request().Context(), appt); err != nil {
			c.Logger().Errorf("create appointment: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error booking appointment"})
		}
		return c.JSON(http.StatusCreated, dto.ItemResponse[model.Appointment]{Message: "Appointment booked", Item: *appt})
	}
}

// @Summary     列出預約
// @Tags        appointments
// @Produce     json
// @Success     200 {object} dto.ListResponse[model.Appointment]
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /appointments [get]
func ListAppointmentsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := st.ListAppointments(c.Request().Context())
		if err != nil {
			c.Logger().Errorf("list appointments: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error fetching appointments"})
		}
		return c.JSON(http.StatusOK, dto.NewListResponse(items))
	}
}
