package api

// swagger:model api.ChatMessage
type ChatMessage struct {
	Role    string `json:"role" form:"role" validate:"required" example:"user"`
	Content string `json:"content" form:"content" example:"I have a headache"`
}

// swagger:model api.ChatRequest
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" form:"messages" validate:"required,min=1,dive"`
}
