package payments

import (
	"net/http"
	"strings"

	"healthcare-clinic/internal/api"
	"healthcare-clinic/internal/catalog"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/service"
	"healthcare-clinic/internal/store"

	"github.com/labstack/echo/v4"
)

var newTransactionID = service.NewTransactionID

// CreatePaymentHandler 建立付款紀錄並扣除庫存
// @Summary     結帳
// @Description 卡號只保留末四碼，CVV 以 *** 儲存；庫存不足的品項不扣庫存也不影響付款
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       body body     api.CreatePaymentRequest true "訂單資料"
// @Success     201  {object} dto.ItemResponse[model.Payment]
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /payments [post]
func CreatePaymentHandler(st store.Store, cc *catalog.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreatePaymentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.MissingFieldsMessage})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: api.ValidationMessage(err)})
		}

		txnID, err := newTransactionID()
		if err != nil {
			c.Logger().Errorf("create payment: transaction id: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error processing payment"})
		}

		payment := &model.Payment{
			TransactionID:   txnID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			DeliveryAddress: req.DeliveryAddress,
			PaymentMethod:   req.PaymentMethod,
			Items:           make([]model.PaymentItem, 0, len(req.Items)),
			TotalAmount:     *req.TotalAmount,
			Status:          service.PaymentStatusFor(req.PaymentMethod),
		}
		for _, it := range req.Items {
			payment.Items = append(payment.Items, model.PaymentItem{
				ID:       it.ID,
				Name:     it.Name,
				Price:    it.Price,
				Quantity: it.Quantity,
			})
		}
		if card := strings.TrimSpace(req.CardNumber); card != "" {
			masked := service.MaskCardNumber(card)
			payment.CardNumber = &masked
		}
		if req.ExpiryDate != "" {
			expiry := req.ExpiryDate
			payment.ExpiryDate = &expiry
		}
		payment.CVV = service.RedactCVV(&req.CVV)

		ctx := c.Request().Context()
		if err := st.CreatePayment(ctx, payment); err != nil {
			c.Logger().Errorf("create payment: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error processing payment"})
		}

		for _, it := range payment.Items {
			ok, err := st.DecrementStock(ctx, it.ID, it.Quantity)
			if err != nil {
				c.Logger().Errorf("create payment %s: decrement medicine %d: %v", payment.TransactionID, it.ID, err)
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error processing payment"})
			}
			if !ok {
				c.Logger().Infof("create payment %s: medicine %d stock below %d, skipped", payment.TransactionID, it.ID, it.Quantity)
			}
		}
		if err := cc.Invalidate(ctx); err != nil {
			c.Logger().Warnf("create payment: %v", err)
		}

		return c.JSON(http.StatusCreated, dto.ItemResponse[model.Payment]{Message: "Payment processed successfully", Item: *payment})
	}
}

// ListPaymentsHandler 依日期新到舊列出付款
// @Summary     列出付款紀錄
// @Tags        payments
// @Produce     json
// @Success     200 {object} dto.ListResponse[model.Payment]
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /payments [get]
func ListPaymentsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := st.ListPayments(c.Request().Context())
		if err != nil {
			c.Logger().Errorf("list payments: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error fetching payments"})
		}
		return c.JSON(http.StatusOK, dto.NewListResponse(items))
	}
}
