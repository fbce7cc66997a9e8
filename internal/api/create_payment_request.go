package api

// swagger:model api.PaymentItemRequest
type PaymentItemRequest struct {
	ID       int     `json:"id" form:"id" validate:"required" example:"1"`
	Name     string  `json:"name" form:"name" example:"Paracetamol 500mg"`
	Price    float64 `json:"price" form:"price" validate:"gte=0" example:"15.99"`
	Quantity int     `json:"quantity" form:"quantity" validate:"gt=0" example:"2"`
}

// swagger:model api.CreatePaymentRequest
type CreatePaymentRequest struct {
	CustomerName    string               `json:"customerName" form:"customerName" validate:"required" example:"Ann Wu"`
	CustomerEmail   string               `json:"customerEmail" form:"customerEmail" validate:"required" example:"ann@example.com"`
	CustomerPhone   string               `json:"customerPhone" form:"customerPhone" validate:"required" example:"0912345678"`
	DeliveryAddress string               `json:"deliveryAddress" form:"deliveryAddress" validate:"required" example:"No. 1, Sec. 1, Taipei"`
	PaymentMethod   string               `json:"paymentMethod" form:"paymentMethod" validate:"required" example:"credit_card"`
	Items           []PaymentItemRequest `json:"items" form:"items" validate:"required,min=1,dive"`
	TotalAmount     *float64             `json:"totalAmount" form:"totalAmount" validate:"required,gte=0" example:"31.98"`
	CardNumber      string               `json:"cardNumber" form:"cardNumber" example:"4111111111111111"`
	ExpiryDate      string               `json:"expiryDate" form:"expiryDate" example:"12/27"`
	CVV             string               `json:"cvv" form:"cvv" example:"123"`
}
