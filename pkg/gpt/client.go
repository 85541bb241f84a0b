package gpt

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"gptbot/pkg/domain"
)

type Config struct {
	Token    string
	Model    string
	Timeout  time.Duration
	ProxyURL string
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
}

type client struct {
	api   *openai.Client
	model string
}

func NewClient(cfg Config) (*client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("gpt token is empty")
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	hc := &http.Client{Timeout: cfg.Timeout}
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy url: %v", err)
		}
		hc.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}

	apiCfg := openai.DefaultConfig(cfg.Token)
	apiCfg.HTTPClient = hc
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &client{
		api:   openai.NewClientWithConfig(apiCfg),
		model: model,
	}, nil
}

// Complete sends the whole conversation to the model and returns the reply
// text. The conversation is not mutated, appending the reply is up to the
// caller.
func (c *client) Complete(ctx context.Context, conv *domain.Conversation) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(conv.Turns))
	for _, turn := range conv.Turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.ErrEmptyResponse
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", domain.ErrEmptyResponse
	}
	return reply, nil
}
