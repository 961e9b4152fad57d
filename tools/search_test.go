package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchWithoutAPIKey(t *testing.T) {
	search := NewSearch("")

	got, err := search.Execute(context.Background(), map[string]interface{}{"query": "latest news"})
	require.NoError(t, err)
	assert.Equal(t, "Search unavailable: TAVILY_API_KEY not set.", got)
}

func TestSearchFormatsResults(t *testing.T) {
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/search", req.URL.Path)
		require.NoError(t, json.NewDecoder(req.Body).Decode(&gotPayload))
		fmt.Fprint(rw, `{"results":[
			{"title":"Go 1.23 released","content":"The Go team announced...","url":"https://go.dev/blog"},
			{"title":"Generics in practice","snippet":"A field report","url":"https://example.com/generics"}
		]}`)
	}))
	t.Cleanup(server.Close)

	search := NewSearch("tv-test")
	search.BaseURL = server.URL

	got, err := search.Execute(context.Background(), map[string]interface{}{"query": "golang news"})
	require.NoError(t, err)

	assert.Equal(t, "golang news", gotPayload["query"])
	assert.Equal(t, float64(maxSearchResults), gotPayload["max_results"])

	assert.Contains(t, got, "[1] Go 1.23 released\n    The Go team announced...\n    https://go.dev/blog")
	assert.Contains(t, got, "[2] Generics in practice\n    A field report\n    https://example.com/generics")
}

func TestSearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		fmt.Fprint(rw, `{"results":[]}`)
	}))
	t.Cleanup(server.Close)

	search := NewSearch("tv-test")
	search.BaseURL = server.URL

	got, err := search.Execute(context.Background(), map[string]interface{}{"query": "obscure thing"})
	require.NoError(t, err)
	assert.Equal(t, "No results found for: 'obscure thing'", got)
}

func TestSearchServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	search := NewSearch("tv-test")
	search.BaseURL = server.URL

	got, err := search.Execute(context.Background(), map[string]interface{}{"query": "anything"})
	require.NoError(t, err)
	assert.Contains(t, got, "Search error:")
}

func TestSearchRequiresQuery(t *testing.T) {
	search := NewSearch("tv-test")

	_, err := search.Execute(context.Background(), map[string]interface{}{})
	assert.Error(t, err)
}
