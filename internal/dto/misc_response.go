package dto

// swagger:model dto.HealthResponse
type HealthResponse struct {
	OK bool `json:"ok" example:"true"`
}

// swagger:model dto.ChatResponse
type ChatResponse struct {
	Content string `json:"content" example:"For headaches, rest in a quiet, dark room..."`
}

// swagger:model dto.IndexResponse
type IndexResponse struct {
	Message string            `json:"message" example:"HealthCare API is running"`
	Health  string            `json:"health" example:"/api/health"`
	Auth    map[string]string `json:"auth"`
	Data    map[string]string `json:"data"`
	AI      map[string]string `json:"ai"`
	Docs    string            `json:"docs" example:"/swagger/index.html"`
}
