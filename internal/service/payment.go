package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"

	"healthcare-clinic/internal/model"
)

const (
	transactionPrefix  = "TXN"
	transactionCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	transactionRandLen = 9
	redactedCVV        = "***"
)

var (
	randInt = rand.Int
	timeNow = time.Now
)

// MaskCardNumber 只保留最後四位數字，其餘數字換成 *，分隔符號保留
func MaskCardNumber(card string) string {
	digits := 0
	for _, r := range card {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	var b strings.Builder
	b.Grow(len(card))
	seen := 0
	for _, r := range card {
		if r >= '0' && r <= '9' {
			seen++
			if digits-seen >= 4 {
				b.WriteByte('*')
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RedactCVV 有提供時一律回傳 ***
func RedactCVV(cvv *string) *string {
	if cvv == nil || *cvv == "" {
		return nil
	}
	r := redactedCVV
	return &r
}

// PaymentStatusFor 貨到付款為 pending，其他付款方式視為完成
func PaymentStatusFor(method string) model.PaymentStatus {
	if method == model.PaymentMethodCashOnDelivery {
		return model.PaymentPending
	}
	return model.PaymentCompleted
}

// NewTransactionID 產生 TXN<unix-millis><9 碼 [0-9A-Z]>
func NewTransactionID() (string, error) {
	var b strings.Builder
	b.WriteString(transactionPrefix)
	b.WriteString(strconv.FormatInt(timeNow().UnixMilli(), 10))
	max := big.NewInt(int64(len(transactionCharset)))
	for i := 0; i < transactionRandLen; i++ {
		n, err := randInt(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(transactionCharset[n.Int64()])
	}
	return b.String(), nil
}
