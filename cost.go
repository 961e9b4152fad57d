package infoagent

import "github.com/openai/openai-go"

// Usage accumulates token counts across the completion calls of one
// session.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	Requests         int64
}

func (u *Usage) record(c openai.CompletionUsage) {
	u.PromptTokens += c.PromptTokens
	u.CompletionTokens += c.CompletionTokens
	u.Requests++
}

func (u Usage) TotalTokens() int64 {
	return u.PromptTokens + u.CompletionTokens
}

type TokenRates struct {
	Input  float64
	Output float64
}

// ModelPricings maps OpenRouter model names to their pricing in
// dollars per million tokens.
var ModelPricings = map[string]TokenRates{
	"meta-llama/llama-3.1-8b-instruct": {
		Input:  0.02,
		Output: 0.03,
	},
	"meta-llama/llama-3.1-70b-instruct": {
		Input:  0.10,
		Output: 0.28,
	},
	"openai/gpt-4o": {
		Input:  2.50,
		Output: 10.0,
	},
	"openai/gpt-4o-mini": {
		Input:  0.15,
		Output: 0.60,
	},
}

// CostDetails represents detailed cost information for a session
type CostDetails struct {
	InputTokens  int64
	OutputTokens int64
	TotalCost    float64
}

// Cost returns the accumulated cost of the session. It calculates the
// cost based on the total input and output tokens and the pricing for
// the session's model. The second return value is false when the model
// has no known pricing.
func (s *Session) Cost() (*CostDetails, bool) {
	pricing, exists := ModelPricings[s.model]
	if !exists {
		return nil, false
	}

	usage := s.State.Usage
	inputCost := float64(usage.PromptTokens) * pricing.Input / 1000000
	outputCost := float64(usage.CompletionTokens) * pricing.Output / 1000000

	return &CostDetails{
		InputTokens:  usage.PromptTokens,
		OutputTokens: usage.CompletionTokens,
		TotalCost:    inputCost + outputCost,
	}, true
}
