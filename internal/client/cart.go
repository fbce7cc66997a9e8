package client

import (
	"context"
	"errors"
	"strings"

	"healthcare-clinic/internal/catalog"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
)

var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrOutOfStock       = errors.New("medicine is out of stock")
	ErrMaxStock         = errors.New("maximum stock reached for this item")
	ErrEmptyCart        = errors.New("cart is empty")
)

// CartItem 是加入購物車當下的藥品快照加上數量，JSON 攤平成同一層
type CartItem struct {
	model.Medicine
	Quantity int `json:"quantity"`
}

// Medicines 從 API 取得藥品；失敗或空列表時改用內建目錄
// 第二個回傳值表示資料是否來自 API
func (c *Client) Medicines(ctx context.Context) ([]model.Medicine, bool) {
	var resp dto.ListResponse[model.Medicine]
	err := c.do(ctx, "GET", "/api/medicines", nil, &resp)
	meds, live := resp.Items, true
	if err != nil || len(meds) == 0 {
		meds, live = catalog.DefaultMedicines(), false
	}
	c.mu.Lock()
	c.catalog = meds
	c.mu.Unlock()
	return meds, live
}

// SearchMedicines 以不分大小寫的子字串比對名稱或分類；空字串回傳全部
func (c *Client) SearchMedicines(ctx context.Context, query string) ([]model.Medicine, bool) {
	meds, live := c.Medicines(ctx)
	return filterMedicines(meds, query), live
}

func filterMedicines(meds []model.Medicine, query string) []model.Medicine {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return meds
	}
	out := []model.Medicine{}
	for _, m := range meds {
		if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.Category), q) {
			out = append(out, m)
		}
	}
	return out
}

// medicine 需持有 c.mu；尚未載入目錄時以內建目錄查詢
func (c *Client) medicine(id int) (model.Medicine, bool) {
	meds := c.catalog
	if meds == nil {
		meds = catalog.DefaultMedicines()
	}
	for _, m := range meds {
		if m.ID == id {
			return m, true
		}
	}
	return model.Medicine{}, false
}

func (c *Client) cartIndex(id int) int {
	for i, it := range c.cart {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// AddToCart 數量加一，不超過目前庫存
func (c *Client) AddToCart(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	med, ok := c.medicine(id)
	if !ok {
		return ErrMedicineNotFound
	}
	if med.Stock <= 0 {
		return ErrOutOfStock
	}
	if i := c.cartIndex(id); i >= 0 {
		if c.cart[i].Quantity >= med.Stock {
			return ErrMaxStock
		}
		c.cart[i].Quantity++
	} else {
		c.cart = append(c.cart, CartItem{Medicine: med, Quantity: 1})
	}
	return c.saveCart()
}

// ChangeQuantity 調整數量；結果 <= 0 時移除，超過庫存時截到庫存並回傳 ErrMaxStock
func (c *Client) ChangeQuantity(id, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.cartIndex(id)
	if i < 0 {
		return nil
	}
	med, ok := c.medicine(id)
	if !ok {
		return nil
	}
	q := c.cart[i].Quantity + delta
	if q <= 0 {
		c.cart = append(c.cart[:i], c.cart[i+1:]...)
		return c.saveCart()
	}
	var capped error
	if q > med.Stock {
		q = med.Stock
		capped = ErrMaxStock
	}
	c.cart[i].Quantity = q
	if err := c.saveCart(); err != nil {
		return err
	}
	return capped
}

func (c *Client) RemoveFromCart(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.cartIndex(id); i >= 0 {
		c.cart = append(c.cart[:i], c.cart[i+1:]...)
	}
	return c.saveCart()
}

func (c *Client) ClearCart() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart = nil
	return c.saveCart()
}

// Cart 回傳購物車的複本
func (c *Client) Cart() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CartItem(nil), c.cart...)
}

// CartCount 是所有品項數量總和
func (c *Client) CartCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.cart {
		n += it.Quantity
	}
	return n
}

func (c *Client) CartTotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cartTotal(c.cart)
}

func cartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (c *Client) saveCart() error {
	items := c.cart
	if items == nil {
		items = []CartItem{}
	}
	return c.storage.Set(KeyCart, items)
}
