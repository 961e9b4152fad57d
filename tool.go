// Package infoagent - tool.go
// Defines the Tool interface and the schema helper for tool arguments.
package infoagent

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
)

// Tool is a synchronous function the model can invoke by name with
// structured arguments. Tools are registered once at startup and the
// set never changes afterwards.
type Tool interface {
	Name() string
	StatusMessage() string
	Description() string
	OpenAI() []openai.ChatCompletionToolParam
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}

// FunctionSchema reflects a Go struct into the parameters object of a
// tool definition.
func FunctionSchema[T any]() openai.FunctionParameters {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	raw, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	params := openai.FunctionParameters{}
	if err := json.Unmarshal(raw, &params); err != nil {
		panic(err)
	}
	return params
}
