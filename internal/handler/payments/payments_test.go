package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"healthcare-clinic/internal/cache"
	"healthcare-clinic/internal/catalog"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/service"
	"healthcare-clinic/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

func newCtx(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	req := httptest.NewRequest(method, "/api/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restoreGlobals() {
	newTransactionID = service.NewTransactionID
}

const cardBody = `{
	"customerName":"Ann","customerEmail":"ann@x.io","customerPhone":"0912","deliveryAddress":"Taipei",
	"paymentMethod":"credit_card","totalAmount":31.98,
	"items":[{"id":1,"name":"Paracetamol 500mg","price":15.99,"quantity":2},{"id":4,"name":"Amoxicillin 500mg","price":25.99,"quantity":99}],
	"cardNumber":"4111111111111111","expiryDate":"12/27","cvv":"123"
}`

func TestCreatePaymentHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	newTransactionID = func() (string, error) { return "TXN1700000000000ABCDEFGHI", nil }

	t.Run("requires at least one item", func(t *testing.T) {
		body := `{"customerName":"Ann","customerEmail":"a","customerPhone":"1","deliveryAddress":"x","paymentMethod":"cash_on_delivery","totalAmount":1,"items":[]}`
		ctx, rec := newCtx(http.MethodPost, body)
		require.NoError(t, CreatePaymentHandler(&store.FakeStore{}, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing total", func(t *testing.T) {
		body := `{"customerName":"Ann","customerEmail":"a","customerPhone":"1","deliveryAddress":"x","paymentMethod":"cash_on_delivery","items":[{"id":1,"quantity":1}]}`
		ctx, rec := newCtx(http.MethodPost, body)
		require.NoError(t, CreatePaymentHandler(&store.FakeStore{}, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("card payment masks and decrements", func(t *testing.T) {
		var saved *model.Payment
		decrements := map[int]int{}
		deletes := 0
		fc := &cache.FakeCache{DelFn: func(context.Context, ...string) *redis.IntCmd {
			deletes++
			return redis.NewIntResult(1, nil)
		}}
		st := &store.FakeStore{
			CreatePaymentFn: func(_ context.Context, p *model.Payment) error {
				saved = p
				p.ID = "p1"
				return nil
			},
			DecrementStockFn: func(_ context.Context, id, qty int) (bool, error) {
				decrements[id] = qty
				return id == 1, nil
			},
		}
		ctx, rec := newCtx(http.MethodPost, cardBody)
		require.NoError(t, CreatePaymentHandler(st, catalog.NewCache(fc, time.Minute))(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)

		require.Equal(t, "************1111", *saved.CardNumber)
		require.Equal(t, "***", *saved.CVV)
		require.Equal(t, "12/27", *saved.ExpiryDate)
		require.Equal(t, model.PaymentCompleted, saved.Status)
		require.Equal(t, "TXN1700000000000ABCDEFGHI", saved.TransactionID)
		require.Equal(t, map[int]int{1: 2, 4: 99}, decrements)
		require.Equal(t, 1, deletes)

		require.NotContains(t, rec.Body.String(), "4111111111111111")
		require.NotContains(t, rec.Body.String(), `"cvv":"123"`)
		var resp dto.ItemResponse[model.Payment]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Payment processed successfully", resp.Message)
		require.Len(t, resp.Item.Items, 2)
	})

	t.Run("cash on delivery is pending without card", func(t *testing.T) {
		var saved *model.Payment
		st := &store.FakeStore{
			CreatePaymentFn:  func(_ context.Context, p *model.Payment) error { saved = p; return nil },
			DecrementStockFn: func(context.Context, int, int) (bool, error) { return true, nil },
		}
		body := `{"customerName":"Ann","customerEmail":"a","customerPhone":"1","deliveryAddress":"x","paymentMethod":"cash_on_delivery","totalAmount":15.99,"items":[{"id":1,"quantity":1}]}`
		ctx, rec := newCtx(http.MethodPost, body)
		require.NoError(t, CreatePaymentHandler(st, nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, model.PaymentPending, saved.Status)
		require.Nil(t, saved.CardNumber)
		require.Nil(t, saved.CVV)
		require.Nil(t, saved.ExpiryDate)
	})

	t.Run("persist error skips stock", func(t *testing.T) {
		st := &store.FakeStore{CreatePaymentFn: func(context.Context, *model.Payment) error { return errors.New("boom") }}
		ctx, rec := newCtx(http.MethodPost, cardBody)
		require.NoError(t, CreatePaymentHandler(st, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("decrement error", func(t *testing.T) {
		st := &store.FakeStore{
			CreatePaymentFn:  func(context.Context, *model.Payment) error { return nil },
			DecrementStockFn: func(context.Context, int, int) (bool, error) { return false, errors.New("db") },
		}
		ctx, rec := newCtx(http.MethodPost, cardBody)
		require.NoError(t, CreatePaymentHandler(st, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("transaction id error", func(t *testing.T) {
		newTransactionID = func() (string, error) { return "", errors.New("rand") }
		ctx, rec := newCtx(http.MethodPost, cardBody)
		require.NoError(t, CreatePaymentHandler(&store.FakeStore{}, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListPaymentsHandler(t *testing.T) {
	st := &store.FakeStore{ListPaymentsFn: func(context.Context) ([]model.Payment, error) {
		return []model.Payment{{ID: "p1", TransactionID: "TXN1"}}, nil
	}}
	ctx, rec := newCtx(http.MethodGet, "")
	require.NoError(t, ListPaymentsHandler(st)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "TXN1")

	st.ListPaymentsFn = func(context.Context) ([]model.Payment, error) { return nil, errors.New("x") }
	ctx, rec = newCtx(http.MethodGet, "")
	require.NoError(t, ListPaymentsHandler(st)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
