package ai

import (
	"errors"
	"net/http"

	"healthcare-clinic/internal/api"
	"healthcare-clinic/internal/chat"
	"healthcare-clinic/internal/dto"

	"github.com/labstack/echo/v4"
)

// ChatHandler 轉送對話到 AI 供應商；completer 為 nil 代表未設定 OPENAI_API_KEY
// @Summary     AI 問答
// @Tags        ai
// @Accept      json
// @Produce     json
// @Param       body body     api.ChatRequest true "對話內容"
// @Success     200  {object} dto.ChatResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     502  {object} dto.HTTPError
// @Failure     503  {object} dto.HTTPError
// @Router      /ai/chat [post]
func ChatHandler(completer chat.Completer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "messages array is required"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "messages array is required"})
		}
		if completer == nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "AI service unavailable (missing OPENAI_API_KEY)"})
		}

		msgs := make([]chat.Message, 0, len(req.Messages))
		for _, m := range req.Messages {
			msgs = append(msgs, chat.Message{Role: m.Role, Content: m.Content})
		}
		content, err := completer.Complete(c.Request().Context(), msgs)
		if err != nil {
			c.Logger().Errorf("ai chat: %v", err)
			if errors.Is(err, chat.ErrUpstream) {
				return c.JSON(http.StatusBadGateway, dto.HTTPError{Message: "Upstream AI error"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "AI chat failed"})
		}
		return c.JSON(http.StatusOK, dto.ChatResponse{Content: content})
	}
}
