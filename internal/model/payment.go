// File: internal/model/payment.go
package model

import "time"

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentMethodCashOnDelivery 貨到付款，建立時狀態為 pending
const PaymentMethodCashOnDelivery = "cash_on_delivery"

// PaymentItem 是下單當下的藥品快照，之後修改藥品不影響歷史訂單
type PaymentItem struct {
	ID       int     `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

type Payment struct {
	ID              string        `db:"id" bson:"_id" json:"id"`
	TransactionID   string        `db:"transaction_id" bson:"transactionId" json:"transactionId"`
	CustomerName    string        `db:"customer_name" bson:"customerName" json:"customerName"`
	CustomerEmail   string        `db:"customer_email" bson:"customerEmail" json:"customerEmail"`
	CustomerPhone   string        `db:"customer_phone" bson:"customerPhone" json:"customerPhone"`
	DeliveryAddress string        `db:"delivery_address" bson:"deliveryAddress" json:"deliveryAddress"`
	PaymentMethod   string        `db:"payment_method" bson:"paymentMethod" json:"paymentMethod"`
	Items           []PaymentItem `db:"items" bson:"items" json:"items"`
	TotalAmount     float64       `db:"total_amount" bson:"totalAmount" json:"totalAmount"`
	CardNumber      *string       `db:"card_number" bson:"cardNumber" json:"cardNumber"`
	ExpiryDate      *string       `db:"expiry_date" bson:"expiryDate" json:"expiryDate"`
	CVV             *string       `db:"cvv" bson:"cvv" json:"cvv"`
	Status          PaymentStatus `db:"status" bson:"status" json:"status"`
	Date            time.Time     `db:"date" bson:"date" json:"date"`
}
