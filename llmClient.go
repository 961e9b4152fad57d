package infoagent

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Define a custom type for context keys
type ContextKey string

const (
	// DefaultBaseURL points at OpenRouter's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultModel is the model used when none is configured.
	DefaultModel = "meta-llama/llama-3.1-8b-instruct"
	// transport-level retries on the completion call
	maxRetries = 2
)

// OpenRouterClient is the production LLM implementation. It speaks to
// any OpenAI-compatible endpoint; the default base URL is OpenRouter.
type OpenRouterClient struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *openai.Client
}

func NewOpenRouterClient(apiKey string, baseURL string, model string) *OpenRouterClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(maxRetries),
	)
	return &OpenRouterClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		client:  client,
	}
}

func optsWithSessionID(ctx context.Context, opts []option.RequestOption) []option.RequestOption {
	if sessionID, ok := ctx.Value(ContextKey("sessionID")).(string); ok {
		opts = append(opts, option.WithHeader("X-Session-Id", sessionID))
	}
	return opts
}

func (c *OpenRouterClient) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	opts := []option.RequestOption{}
	opts = optsWithSessionID(ctx, opts)
	return c.client.Chat.Completions.New(ctx, params, opts...)
}
