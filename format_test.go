package infoagent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	infoagent "github.com/muhammadjavediqbal/info-agent-langraph"
)

func TestFormatAnswerCleanup(t *testing.T) {
	agent := infoagent.NewAgent("be helpful", nil)
	ctx := context.Background()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty input",
			raw:  "",
			want: "(No response)",
		},
		{
			name: "plain text passes through",
			raw:  "The capital of France is Paris.",
			want: "The capital of France is Paris.",
		},
		{
			name: "code fences stripped",
			raw:  "```text\nhello world\n```",
			want: "hello world",
		},
		{
			name: "inline backticks stripped",
			raw:  "run `go test` locally",
			want: "run go test locally",
		},
		{
			name: "html tags stripped",
			raw:  "<div>The answer is <b>42</b></div>",
			want: "The answer is 42",
		},
		{
			name: "final answer extracted",
			raw:  "I looked it up.\n\n**Final Answer**: Paris is the capital.",
			want: "Paris is the capital.",
		},
		{
			name: "final answer without markup",
			raw:  "Final answer: 4",
			want: "4",
		},
		{
			name: "thoughts block stripped",
			raw:  "Thoughts: let me think about this\n\nThe answer is 4",
			want: "The answer is 4",
		},
		{
			name: "reasoning header lines dropped",
			raw:  "Reasoning: because math\nThe answer is 4",
			want: "The answer is 4",
		},
		{
			name: "only noise becomes no response",
			raw:  "``````",
			want: "(No response)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, agent.FormatAnswer(ctx, tc.raw))
		})
	}
}

func TestFormatAnswerExecutesLeakedToolCall(t *testing.T) {
	echo := &echoTool{}
	agent := infoagent.NewAgent("be helpful", []infoagent.Tool{echo})
	ctx := context.Background()

	got := agent.FormatAnswer(ctx, `{"name": "echo", "parameters": {"text": "from the tool"}}`)
	assert.Equal(t, "from the tool", got)

	// fenced variant and the "arguments" key spelling
	got = agent.FormatAnswer(ctx, "```json\n{\"name\": \"echo\", \"arguments\": {\"text\": \"fenced\"}}\n```")
	assert.Equal(t, "fenced", got)
}

func TestFormatAnswerLeakedToolCallUnknownTool(t *testing.T) {
	agent := infoagent.NewAgent("be helpful", []infoagent.Tool{&echoTool{}})

	got := agent.FormatAnswer(context.Background(), `{"name": "nope", "parameters": {}}`)
	assert.Equal(t, "(Unknown tool: nope)", got)
}

func TestFormatAnswerLeakedToolCallError(t *testing.T) {
	agent := infoagent.NewAgent("be helpful", []infoagent.Tool{&failingTool{}})

	got := agent.FormatAnswer(context.Background(), `{"name": "boom", "parameters": {}}`)
	assert.Contains(t, got, "(Tool execution error:")
}

func TestFormatAnswerOrdinaryJSONNotExecuted(t *testing.T) {
	agent := infoagent.NewAgent("be helpful", nil)

	// JSON without a "name" key is just content
	got := agent.FormatAnswer(context.Background(), `{"temperature": 21}`)
	assert.Equal(t, `{"temperature": 21}`, got)
}

func TestFormatAnswerNonObjectArgumentsNotExecuted(t *testing.T) {
	echo := &echoTool{}
	agent := infoagent.NewAgent("be helpful", []infoagent.Tool{echo})

	// a "name" key with string arguments is not a runnable tool call,
	// the text comes back as content
	raw := `{"name": "echo", "parameters": "2+2"}`
	got := agent.FormatAnswer(context.Background(), raw)
	assert.Equal(t, raw, got)
	assert.Equal(t, 0, echo.calls)

	raw = `{"name": "echo", "input": 42}`
	got = agent.FormatAnswer(context.Background(), raw)
	assert.Equal(t, raw, got)
	assert.Equal(t, 0, echo.calls)
}
