package infoagent

import (
	"github.com/openai/openai-go"
)

func UserMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.UserMessage(content)
}

func AssistantMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.AssistantMessage(content)
}

func SystemMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.SystemMessage(content)
}

// ToolMessage wraps a tool result so it can be appended to the history
// against the tool call that produced it.
func ToolMessage(content string, toolCallID string) openai.ChatCompletionToolMessageParam {
	return openai.ChatCompletionToolMessageParam{
		Role:       openai.F(openai.ChatCompletionToolMessageParamRoleTool),
		Content:    openai.F([]openai.ChatCompletionContentPartTextParam{{Type: openai.F(openai.ChatCompletionContentPartTextTypeText), Text: openai.F(content)}}),
		ToolCallID: openai.F(toolCallID),
	}
}

// MessageList holds an ordered collection of messages to preserve the
// conversation history. It is append-only: nothing is ever removed or
// reordered once added.
type MessageList struct {
	Messages []openai.ChatCompletionMessageParamUnion
}

func NewMessageList() *MessageList {
	return &MessageList{
		Messages: []openai.ChatCompletionMessageParamUnion{},
	}
}

func (ml *MessageList) Len() int {
	return len(ml.Messages)
}

// Add appends one or more new messages to the MessageList in a FIFO order.
func (ml *MessageList) Add(msgs ...openai.ChatCompletionMessageParamUnion) {
	ml.Messages = append(ml.Messages, msgs...)
}

// AddFirst injects the system prompt at the front of the history.
func (ml *MessageList) AddFirst(prompt string) {
	ml.Messages = append([]openai.ChatCompletionMessageParamUnion{SystemMessage(prompt)}, ml.Messages...)
}

// All returns a copy of the slice backing the list.
func (ml *MessageList) All() []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, len(ml.Messages))
	copy(messages, ml.Messages)
	return messages
}

// Clone creates a deep copy of the MessageList.
func (ml *MessageList) Clone() *MessageList {
	return &MessageList{Messages: ml.All()}
}
