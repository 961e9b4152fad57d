package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/tidwall/gjson"

	infoagent "github.com/muhammadjavediqbal/info-agent-langraph"
)

const (
	defaultTavilyURL = "https://api.tavily.com"
	searchTimeout    = 10 * time.Second
	maxSearchResults = 3
)

type searchArgs struct {
	Query string `json:"query" jsonschema_description:"The search query string"`
}

// Search queries the Tavily API for current web information. Without
// an API key the tool stays registered but reports itself unavailable.
type Search struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

func NewSearch(apiKey string) *Search {
	return &Search{
		APIKey:     apiKey,
		BaseURL:    defaultTavilyURL,
		httpClient: &http.Client{Timeout: searchTimeout},
	}
}

func (s *Search) Name() string {
	return "search_web"
}

func (s *Search) Description() string {
	return "Search for recent news, facts, or any web information"
}

func (s *Search) StatusMessage() string {
	return "Searching the web"
}

func (s *Search) OpenAI() []openai.ChatCompletionToolParam {
	return []openai.ChatCompletionToolParam{
		{
			Type: openai.F(openai.ChatCompletionToolTypeFunction),
			Function: openai.F(openai.FunctionDefinitionParam{
				Name:        openai.F(s.Name()),
				Description: openai.F(s.Description()),
				Parameters:  openai.F(infoagent.FunctionSchema[searchArgs]()),
			}),
		},
	}
}

func (s *Search) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	query, ok := args["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query argument is required")
	}

	if s.APIKey == "" {
		return "Search unavailable: TAVILY_API_KEY not set.", nil
	}

	results, err := s.search(ctx, query)
	if err != nil {
		return fmt.Sprintf("Search error: %v", err), nil
	}

	formatted := []string{}
	for i, result := range results {
		if i >= maxSearchResults {
			break
		}
		content := strings.TrimSpace(result.Get("content").String())
		if content == "" {
			content = strings.TrimSpace(result.Get("snippet").String())
		}
		parts := []string{}
		for _, value := range []string{strings.TrimSpace(result.Get("title").String()), content, strings.TrimSpace(result.Get("url").String())} {
			if value != "" {
				parts = append(parts, value)
			}
		}
		if len(parts) > 0 {
			formatted = append(formatted, fmt.Sprintf("[%d] %s", i+1, strings.Join(parts, "\n    ")))
		}
	}

	if len(formatted) == 0 {
		return fmt.Sprintf("No results found for: '%s'", query), nil
	}
	return strings.Join(formatted, "\n\n"), nil
}

func (s *Search) search(ctx context.Context, query string) ([]gjson.Result, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"api_key":     s.APIKey,
		"query":       query,
		"max_results": maxSearchResults,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return gjson.ParseBytes(body).Get("results").Array(), nil
}
