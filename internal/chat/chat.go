// Package chat 代理對 OpenAI Chat Completions 的呼叫
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	Model       = openai.GPT3Dot5Turbo
	Temperature = 0.3
	MaxTokens   = 300

	// EmptyReply 上游回傳空內容時的替代文字
	EmptyReply = "I'm sorry, I couldn't generate a response."
)

// ErrUpstream 上游回應非 2xx
var ErrUpstream = errors.New("upstream AI error")

type Message struct {
	Role    string
	Content string
}

// Completer 由 *OpenAI 實作，handler 測試以 fake 取代
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

type OpenAI struct {
	client *openai.Client
}

// NewOpenAI baseURL 為空時使用官方端點
func NewOpenAI(apiKey, baseURL string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg)}
}

func (o *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       Model,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		if errors.As(err, &apiErr) || errors.As(err, &reqErr) {
			return "", fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		return "", fmt.Errorf("Complete: %w", err)
	}

	var content string
	if len(resp.Choices) > 0 {
		content = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if content == "" {
		return EmptyReply, nil
	}
	return content, nil
}
