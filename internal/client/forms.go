package client

import (
	"context"
	"strconv"
	"strings"
	"time"

	"healthcare-clinic/internal/api"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/service"
)

// SystemPrompt 放在每次聊天請求的最前面
const SystemPrompt = "You are a helpful healthcare assistant. Provide concise, general health information, triage guidance, and safety warnings. Always include a short medical disclaimer that this is not a substitute for professional advice."

// QueuedConsult 是離線時暫存的諮詢，Date 為本機時間
type QueuedConsult struct {
	api.CreateConsultRequest
	Date time.Time `json:"date"`
}

type QueuedAppointment struct {
	api.CreateAppointmentRequest
	CreatedAt time.Time `json:"createdAt"`
}

// QueuedPayment 卡號已遮罩、CVV 已遮蔽後才寫入本機
type QueuedPayment struct {
	api.CreatePaymentRequest
	Date          time.Time           `json:"date"`
	Status        model.PaymentStatus `json:"status"`
	TransactionID string              `json:"transactionId"`
}

// Submission 是表單送出的結果；Offline 表示已暫存於本機
type Submission struct {
	ID      string
	Offline bool
}

type CheckoutInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	PaymentMethod   string
	CardNumber      string
	ExpiryDate      string
	CVV             string
}

type Receipt struct {
	TransactionID string
	Status        model.PaymentStatus
	Total         float64
	Offline       bool
}

func (c *Client) SubmitConsult(ctx context.Context, req api.CreateConsultRequest) (Submission, error) {
	var resp dto.ItemResponse[model.Consult]
	if err := c.do(ctx, "POST", "/api/consults", req, &resp); err == nil {
		return Submission{ID: resp.Item.ID}, nil
	}
	err := c.enqueue(func(s *Storage) error {
		return appendQueue(s, KeyConsults, QueuedConsult{CreateConsultRequest: req, Date: c.now().UTC()})
	})
	return Submission{Offline: true}, err
}

func (c *Client) BookAppointment(ctx context.Context, req api.CreateAppointmentRequest) (Submission, error) {
	var resp dto.ItemResponse[model.Appointment]
	if err := c.do(ctx, "POST", "/api/appointments", req, &resp); err == nil {
		return Submission{ID: resp.Item.ID}, nil
	}
	err := c.enqueue(func(s *Storage) error {
		return appendQueue(s, KeyAppointments, QueuedAppointment{CreateAppointmentRequest: req, CreatedAt: c.now().UTC()})
	})
	return Submission{Offline: true}, err
}

// Checkout 以目前購物車下單，成功或離線暫存後都會清空購物車
func (c *Client) Checkout(ctx context.Context, in CheckoutInput) (Receipt, error) {
	items := c.Cart()
	if len(items) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	total := cartTotal(items)
	req := api.CreatePaymentRequest{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   in.PaymentMethod,
		Items:           make([]api.PaymentItemRequest, 0, len(items)),
		TotalAmount:     &total,
		CardNumber:      strings.TrimSpace(in.CardNumber),
		ExpiryDate:      strings.TrimSpace(in.ExpiryDate),
		CVV:             strings.TrimSpace(in.CVV),
	}
	for _, it := range items {
		req.Items = append(req.Items, api.PaymentItemRequest{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}

	var resp dto.ItemResponse[model.Payment]
	if err := c.do(ctx, "POST", "/api/payments", req, &resp); err == nil {
		c.Medicines(ctx)
		return Receipt{TransactionID: resp.Item.TransactionID, Status: resp.Item.Status, Total: total}, c.ClearCart()
	}

	queued := QueuedPayment{
		CreatePaymentRequest: req,
		Date:                 c.now().UTC(),
		Status:               service.PaymentStatusFor(in.PaymentMethod),
		TransactionID:        "TXN" + strconv.FormatInt(c.now().UnixMilli(), 10),
	}
	if queued.CardNumber != "" {
		queued.CardNumber = service.MaskCardNumber(queued.CardNumber)
	}
	if cvv := service.RedactCVV(&queued.CVV); cvv != nil {
		queued.CVV = *cvv
	}
	if err := c.enqueue(func(s *Storage) error {
		return appendQueue(s, KeyPayments, queued)
	}); err != nil {
		return Receipt{}, err
	}
	receipt := Receipt{TransactionID: queued.TransactionID, Status: queued.Status, Total: total, Offline: true}
	return receipt, c.ClearCart()
}

// Chat 先呼叫 /api/ai/chat，任何失敗或空回覆改用內建的規則式回覆
// 第二個回傳值表示回覆是否來自 AI
func (c *Client) Chat(ctx context.Context, history []api.ChatMessage) (string, bool) {
	msgs := history
	if len(history) == 0 || history[0].Role != "system" {
		msgs = append([]api.ChatMessage{{Role: "system", Content: SystemPrompt}}, history...)
	}
	var resp dto.ChatResponse
	err := c.do(ctx, "POST", "/api/ai/chat", api.ChatRequest{Messages: msgs}, &resp)
	if err == nil && strings.TrimSpace(resp.Content) != "" {
		return resp.Content, true
	}
	var last string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			last = history[i].Content
			break
		}
	}
	return c.bot.Reply(last), false
}

// Pending 回傳三個暫存列表各自的筆數
func (c *Client) Pending() (consults, appointments, payments int) {
	var qc []QueuedConsult
	var qa []QueuedAppointment
	var qp []QueuedPayment
	c.storage.Get(KeyConsults, &qc)
	c.storage.Get(KeyAppointments, &qa)
	c.storage.Get(KeyPayments, &qp)
	return len(qc), len(qa), len(qp)
}

func appendQueue[T any](s *Storage, key string, item T) error {
	var list []T
	s.Get(key, &list)
	return s.Set(key, append(list, item))
}
