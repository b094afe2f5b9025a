package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/avast/retry-go/v4"
	"github.com/draftforge/contract-backend/internal/config"
	"github.com/draftforge/contract-backend/internal/entity"
	pkghttp "github.com/draftforge/contract-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type Connector struct {
	config config.LLMConnectorConfig
	client *openai.Client
	logger *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = pkghttp.NewClient(
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
		pkghttp.WithClientKeepAlive(cfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
	)

	return &Connector{
		config: cfg,
		client: openai.NewClientWithConfig(clientCfg),
		logger: logger,
	}
}

// StreamCompletion sends a chat completion request to the provider and
// forwards content deltas to onDelta as they arrive. Opening the stream is
// retried with backoff; once the provider starts answering there is no
// retry, a broken stream surfaces as an error.
func (c *Connector) StreamCompletion(
	ctx context.Context,
	req *entity.LLMCompletionRequest,
	onDelta func(delta string) error,
) error {
	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.config.Temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.config.MaxTokens
	}

	ctxzap.Info(ctx, "opening completion stream",
		zap.String("model", c.config.Model),
		zap.Int("max_tokens", maxTokens),
	)

	chatReq := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      true,
	}

	var stream *openai.ChatCompletionStream
	err := retry.Do(
		func() error {
			var serr error
			stream, serr = c.client.CreateChatCompletionStream(ctx, chatReq)
			return serr
		},
		append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		return fmt.Errorf("create completion stream: %w", err)
	}
	defer stream.Close()

	var chunks int
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("receive completion chunk: %w", err)
		}

		if len(resp.Choices) == 0 {
			continue
		}

		delta := resp.Choices[0].Delta.Content
		if delta == "" {
			continue
		}

		chunks++
		if err := onDelta(delta); err != nil {
			return err
		}
	}

	ctxzap.Info(ctx, "completion stream finished", zap.Int("chunks", chunks))

	return nil
}

// Model returns the configured provider model identifier
func (c *Connector) Model() string {
	return c.config.Model
}

// Health checks provider reachability by listing available models
func (c *Connector) Health(ctx context.Context) error {
	if _, err := c.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list provider models: %w", err)
	}
	return nil
}
