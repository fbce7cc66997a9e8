package dto

// ItemResponse 建立/更新成功時回傳 {message, item}
type ItemResponse[T any] struct {
	Message string `json:"message" example:"Medicine added"`
	Item    T      `json:"item"`
}

// ListResponse 列表一律包成 {items}
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items}
}
