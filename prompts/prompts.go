// Package prompts renders the system prompt handed to the model.
package prompts

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// ToolInfo is the slice of a tool the prompt cares about.
type ToolInfo struct {
	Name        string
	Description string
}

// generateFromTemplate is a generic function that generates a prompt from any template and data.
func generateFromTemplate[T any](templateString string, data T) (string, error) {
	funcMap := template.FuncMap{
		"formatTools": formatTools,
	}

	tmpl, err := template.New("prompt").Funcs(funcMap).Parse(templateString)
	if err != nil {
		return "", err
	}
	var prompt bytes.Buffer
	if err := tmpl.Execute(&prompt, data); err != nil {
		return "", err
	}
	return prompt.String(), nil
}

// formatTools renders the tool list as markdown bullet points.
func formatTools(tools []ToolInfo) string {
	var builder strings.Builder
	for _, tool := range tools {
		builder.WriteString(fmt.Sprintf("- `%s` — %s\n", tool.Name, tool.Description))
	}
	return strings.TrimRight(builder.String(), "\n")
}
