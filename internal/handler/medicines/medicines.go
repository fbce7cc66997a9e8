package medicines

import (
	"errors"
	"net/http"
	"strconv"

	"healthcare-clinic/internal/api"
	"healthcare-clinic/internal/catalog"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/store"

	"github.com/labstack/echo/v4"
)

const notFound = "Medicine not found"

// ListMedicinesHandler 公開藥品列表，命中快取時不查資料庫
// @Summary     列出藥品
// @Description 依 id 遞增排序
// @Tags        medicines
// @Produce     json
// @Success     200 {object} dto.ListResponse[model.Medicine]
// @Failure     500 {object} dto.HTTPError
// @Router      /medicines [get]
func ListMedicinesHandler(st store.Store, cc *catalog.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if meds, ok := cc.Medicines(ctx); ok {
			return c.JSON(http.StatusOK, dto.NewListResponse(meds))
		}

		gen := cc.Generation()
		meds, err := st.ListMedicines(ctx)
		if err != nil {
			c.Logger().Errorf("list medicines: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error fetching medicines"})
		}
		if _, err := cc.StoreIf(ctx, gen, meds); err != nil {
			c.Logger().Warnf("list medicines: %v", err)
		}
		return c.JSON(http.StatusOK, dto.NewListResponse(meds))
	}
}

// CreateMedicineHandler 新增藥品，id 由伺服器指派
// @Summary     新增藥品
// @Tags        medicines
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateMedicineRequest true "藥品資料"
// @Success     201  {object} dto.ItemResponse[model.Medicine]
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /medicines [post]
func CreateMedicineHandler(st store.Store, cc *catalog.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateMedicineRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.MissingFieldsMessage})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.ValidationMessage(err)})
		}

		med := &model.Medicine{
			Name:     req.Name,
			Price:    *req.Price,
			Category: req.Category,
			Stock:    *req.Stock,
			Image:    req.Image,
		}
		ctx := c.Request().Context()
		if err := st.CreateMedicine(ctx, med); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "Medicine id taken, please retry"})
			}
			c.Logger().Errorf("create medicine: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error adding medicine"})
		}
		invalidate(c, cc)
		return c.JSON(http.StatusCreated, dto.ItemResponse[model.Medicine]{Message: "Medicine added", Item: *med})
	}
}

// UpdateMedicineHandler 部分更新；空字串與未提供的欄位保留原值
// @Summary     更新藥品
// @Tags        medicines
// @Accept      json
// @Produce     json
// @Param       id   path     int                       true "藥品 id"
// @Param       body body     api.UpdateMedicineRequest true "要更新的欄位"
// @Success     200  {object} dto.ItemResponse[model.Medicine]
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /medicines/{id} [put]
func UpdateMedicineHandler(st store.Store, cc *catalog.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Invalid medicine id"})
		}
		var req api.UpdateMedicineRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.ValidationMessage(err)})
		}

		med, err := st.UpdateMedicine(c.Request().Context(), id, req.Patch())
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: notFound})
		}
		if err != nil {
			c.Logger().Errorf("update medicine %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error updating medicine"})
		}
		invalidate(c, cc)
		return c.JSON(http.StatusOK, dto.ItemResponse[model.Medicine]{Message: "Medicine updated", Item: *med})
	}
}

// DeleteMedicineHandler 刪除藥品
// @Summary     刪除藥品
// @Tags        medicines
// @Produce     json
// @Param       id  path     int true "藥品 id"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /medicines/{id} [delete]
func DeleteMedicineHandler(st store.Store, cc *catalog.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Invalid medicine id"})
		}
		err = st.DeleteMedicine(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: notFound})
		}
		if err != nil {
			c.Logger().Errorf("delete medicine %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error deleting medicine"})
		}
		invalidate(c, cc)
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Medicine deleted"})
	}
}

// invalidate 失效失敗只記錄；快取最多晚 TTL 才更新
func invalidate(c echo.Context, cc *catalog.Cache) {
	if err := cc.Invalidate(c.Request().Context()); err != nil {
		c.Logger().Warnf("invalidate medicine cache: %v", err)
	}
}
