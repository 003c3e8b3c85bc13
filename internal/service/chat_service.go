package service

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/spec-kit/opportunity-service/internal/config"
)

const chatSystemPrompt = "You are a helpful assistant for a scholarship and career opportunity platform. " +
	"Answer questions about scholarships, jobs and the application process concisely."

// ErrChatNotConfigured is returned when no completion API key is set.
var ErrChatNotConfigured = errors.New("chat service not configured")

// ChatService proxies user messages to an external chat-completion model
// with a bounded timeout.
type ChatService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewChatService builds the proxy. With no API key configured the service
// stays up but every call fails as an upstream error.
func NewChatService(cfg config.ChatConfig) *ChatService {
	s := &ChatService{model: cfg.Model, timeout: cfg.Timeout()}
	if cfg.APIKey != "" {
		s.client = openai.NewClient(cfg.APIKey)
	}
	return s
}

// Chat forwards the message and returns the completion text.
func (s *ChatService) Chat(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", ErrChatNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
