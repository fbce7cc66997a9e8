package dto

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// message 錯誤描述
	Message string `json:"message"`
}

// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Signup successful"`
}
