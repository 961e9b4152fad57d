// Package infoagent - format.go
// Cleans raw model output for display. Small models leak markdown
// fences, HTML, reasoning preambles and sometimes the tool-call JSON
// itself into the answer content; everything here is damage control
// for that.
package infoagent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	codeFenceRe   = regexp.MustCompile("```" + `[\w]*` + "\n?")
	inlineCodeRe  = regexp.MustCompile("`([^`]*)`")
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	finalAnswerRe = regexp.MustCompile(`(?i)\*{0,2}final\s+answer\*{0,2}\s*:?\s*`)
	thoughtsRe    = regexp.MustCompile(`(?is)^(thoughts?|reasoning|thinking|chain.of.thought)\s*:.*?(\n\n|\z)`)
	thoughtLineRe = regexp.MustCompile(`(?i)^\s*(thoughts?|reasoning)\s*:`)
)

// FormatAnswer cleans up raw model output for display:
//  1. Detect a raw tool-call JSON object leaked into the content and
//     execute that tool directly.
//  2. Strip markdown code fences and inline backticks.
//  3. Strip raw HTML tags that leaked through.
//  4. If a "Final Answer" marker exists, return only what follows it.
//  5. Otherwise strip a leading Thoughts/Reasoning block.
func (a *Agent) FormatAnswer(ctx context.Context, raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "(No response)"
	}

	if name, args, ok := leakedToolCall(text); ok {
		a.logger.Warn("Raw tool-call JSON detected in content, executing directly", "tool", name)
		return a.runLeakedToolCall(ctx, name, args)
	}

	text = codeFenceRe.ReplaceAllString(text, "")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = htmlTagRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	if loc := finalAnswerRe.FindStringIndex(text); loc != nil {
		answer := strings.TrimSpace(text[loc[1]:])
		return strings.TrimSpace(strings.TrimLeft(answer, "*"))
	}

	text = strings.TrimSpace(thoughtsRe.ReplaceAllString(text, ""))

	// drop any remaining isolated "Thoughts:" header lines
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if thoughtLineRe.MatchString(line) {
			continue
		}
		lines = append(lines, line)
	}
	cleaned := strings.TrimSpace(strings.Join(lines, "\n"))
	if cleaned == "" {
		return "(No response)"
	}
	return cleaned
}

// leakedToolCall reports whether text is a bare tool-call object such
// as {"name": "calculator", "parameters": {"expression": "2+2"}}.
// Fences around the JSON are tolerated. The arguments key varies by
// model: "parameters", "arguments" and "input" are all seen in the
// wild.
func leakedToolCall(text string) (string, map[string]interface{}, bool) {
	candidate := strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
	if !strings.HasPrefix(candidate, "{") || !gjson.Valid(candidate) {
		return "", nil, false
	}
	parsed := gjson.Parse(candidate)
	if !parsed.IsObject() {
		return "", nil, false
	}
	name := parsed.Get("name")
	if !name.Exists() || name.Type != gjson.String {
		return "", nil, false
	}

	for _, key := range []string{"parameters", "arguments", "input"} {
		args := parsed.Get(key)
		if !args.Exists() {
			continue
		}
		// a non-object arguments value means this is not a tool call
		// we can run, treat the whole text as prose
		if !args.IsObject() {
			return "", nil, false
		}
		argMap, ok := args.Value().(map[string]interface{})
		if !ok {
			argMap = map[string]interface{}{}
		}
		return name.String(), argMap, true
	}
	return name.String(), map[string]interface{}{}, true
}

func (a *Agent) runLeakedToolCall(ctx context.Context, name string, args map[string]interface{}) string {
	tool, err := a.GetTool(name)
	if err != nil {
		return fmt.Sprintf("(Unknown tool: %s)", name)
	}
	output, err := tool.Execute(ctx, args)
	if err != nil {
		return fmt.Sprintf("(Tool execution error: %v)", err)
	}
	return output
}
