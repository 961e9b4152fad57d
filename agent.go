// Package infoagent implements a small ReAct-style agent: a loop that
// asks an OpenAI-compatible chat completions API to either answer or
// call one of a fixed set of tools, executes the requested tools, and
// feeds the results back until a final answer is produced.
package infoagent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
)

// DefaultMaxIterations caps the decide/act loop for a single user
// message so a confused model cannot spin forever.
const DefaultMaxIterations = 5

// Agent orchestrates calls to the LLM, dispatches tool calls, and
// determines when the answer is final.
type Agent struct {
	prompt        string
	tools         []Tool
	maxIterations int
	logger        *slog.Logger
}

// NewAgent creates an Agent with the given system prompt and tool set.
// Tool names must be unique.
func NewAgent(prompt string, tools []Tool) *Agent {
	return &Agent{
		prompt:        prompt,
		tools:         tools,
		maxIterations: DefaultMaxIterations,
		logger:        slog.Default(),
	}
}

func (a *Agent) GetLogger() *slog.Logger {
	return a.logger
}

// SetMaxIterations overrides the decision-step cap. Values below one
// are ignored.
func (a *Agent) SetMaxIterations(n int) {
	if n >= 1 {
		a.maxIterations = n
	}
}

func (a *Agent) GetTool(name string) (Tool, error) {
	for _, tool := range a.tools {
		if tool.Name() == name {
			return tool, nil
		}
	}
	return nil, fmt.Errorf("tool %s not found", name)
}

func (a *Agent) toolParams() []openai.ChatCompletionToolParam {
	tools := []openai.ChatCompletionToolParam{}
	for _, tool := range a.tools {
		tools = append(tools, tool.OpenAI()...)
	}
	return tools
}

// Run drives the decide/act loop for a single user message. The
// history inside state must already contain the user message; Run
// injects the system prompt at the front, then alternates between
// completion calls and tool execution until the model answers without
// requesting a tool or the iteration cap is hit. Responses (tool
// status lines, the final answer, errors) are sent on out, which is
// closed when the loop finishes.
func (a *Agent) Run(ctx context.Context, llm LLM, model string, state *SessionState, out chan<- Response) {
	defer close(out)

	state.MessageHistory.AddFirst(a.prompt)

	var lastContent string
	for iteration := 0; ; iteration++ {
		a.logger.Info("Agent thinking", "iteration", iteration+1)

		params := openai.ChatCompletionNewParams{
			Messages:    openai.F(state.MessageHistory.All()),
			Model:       openai.F(model),
			Temperature: openai.F(0.0),
		}
		if tools := a.toolParams(); len(tools) > 0 {
			params.Tools = openai.F(tools)
		}

		completion, err := llm.New(ctx, params)
		if err != nil {
			a.logger.Error("Error calling LLM", "error", err)
			out <- Response{Content: err.Error(), Type: ResponseTypeError}
			return
		}
		if len(completion.Choices) == 0 {
			a.logger.Error("LLM returned no choices")
			out <- Response{Content: "model returned no choices", Type: ResponseTypeError}
			return
		}
		state.Usage.record(completion.Usage)

		message := completion.Choices[0].Message
		state.MessageHistory.Add(message)
		if message.Content != "" {
			lastContent = message.Content
		}

		if len(message.ToolCalls) == 0 {
			a.logger.Info("Final answer ready")
			out <- Response{Content: lastContent, Type: ResponseTypeFinal}
			return
		}

		// The cap counts completion calls; requested tool calls that
		// would need one more completion to interpret are not run.
		if iteration+1 >= a.maxIterations {
			a.logger.Warn("Max iterations reached, stopping", "limit", a.maxIterations)
			out <- Response{Content: lastContent, Type: ResponseTypeFinal}
			return
		}

		for _, toolCall := range message.ToolCalls {
			state.MessageHistory.Add(a.executeToolCall(ctx, toolCall, out))
		}
	}
}

// executeToolCall runs one requested tool synchronously and returns the
// tool-result message to append. Failures never abort the loop, they
// come back as tool-result messages for the model to work around.
func (a *Agent) executeToolCall(ctx context.Context, toolCall openai.ChatCompletionMessageToolCall, out chan<- Response) openai.ChatCompletionMessageParamUnion {
	tool, err := a.GetTool(toolCall.Function.Name)
	if err != nil {
		a.logger.Error("Unknown tool requested", "tool", toolCall.Function.Name)
		return ToolMessage(fmt.Sprintf("Unknown tool: %s. Answer with the tools you have.", toolCall.Function.Name), toolCall.ID)
	}

	out <- Response{Content: tool.StatusMessage(), Type: ResponseTypeStatus}
	a.logger.Info("Tool requested", "tool", tool.Name(), "arguments", toolCall.Function.Arguments)

	arguments := map[string]interface{}{}
	if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &arguments); err != nil {
		a.logger.Error("Error unmarshalling tool arguments", "error", err)
		return ToolMessage(fmt.Sprintf("Error: invalid arguments for %s: %s", tool.Name(), err), toolCall.ID)
	}

	output, err := tool.Execute(ctx, arguments)
	if err != nil {
		a.logger.Error("Error executing tool", "tool", tool.Name(), "error", err)
		return ToolMessage(fmt.Sprintf("Error running %s: %s. Answer as best you can without it.", tool.Name(), err), toolCall.ID)
	}
	return ToolMessage(output, toolCall.ID)
}
