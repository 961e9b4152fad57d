// Package tools holds the built-in tools the agent can invoke: a math
// evaluator, current weather and web search.
package tools

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/openai/openai-go"

	infoagent "github.com/muhammadjavediqbal/info-agent-langraph"
)

type calculatorArgs struct {
	Expression string `json:"expression" jsonschema_description:"A mathematical expression, e.g. '2 + 2', '10 * (3 + 2)' or 'sqrt(144)'"`
}

// Calculator evaluates math expressions against a whitelist of
// operators, functions and constants. No eval, no surprises.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Name() string {
	return "calculator"
}

func (c *Calculator) Description() string {
	return "Evaluate math expressions (e.g. '2 + 2', 'sqrt(144)')"
}

func (c *Calculator) StatusMessage() string {
	return "Crunching the numbers"
}

func (c *Calculator) OpenAI() []openai.ChatCompletionToolParam {
	return []openai.ChatCompletionToolParam{
		{
			Type: openai.F(openai.ChatCompletionToolTypeFunction),
			Function: openai.F(openai.FunctionDefinitionParam{
				Name:        openai.F(c.Name()),
				Description: openai.F(c.Description()),
				Parameters:  openai.F(infoagent.FunctionSchema[calculatorArgs]()),
			}),
		},
	}
}

// Execute evaluates the expression. Math-level failures (bad syntax,
// division by zero, unknown names) come back as result strings so the
// model can relay them; only a missing argument is a hard error.
func (c *Calculator) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	expression, ok := args["expression"].(string)
	if !ok || strings.TrimSpace(expression) == "" {
		return "", fmt.Errorf("expression argument is required")
	}

	result, err := evaluate(expression)
	if err != nil {
		if errors.Is(err, errDivisionByZero) {
			return "Error: Division by zero", nil
		}
		return fmt.Sprintf("Error evaluating '%s': %s", expression, err), nil
	}

	return fmt.Sprintf("%s = %s", expression, formatNumber(result)), nil
}

var errDivisionByZero = errors.New("division by zero")

var calcFunctions = map[string]struct {
	arity int
	apply func(args []float64) float64
}{
	"sqrt":  {1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"abs":   {1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"ceil":  {1, func(a []float64) float64 { return math.Ceil(a[0]) }},
	"floor": {1, func(a []float64) float64 { return math.Floor(a[0]) }},
	"log":   {1, func(a []float64) float64 { return math.Log(a[0]) }},
	"log2":  {1, func(a []float64) float64 { return math.Log2(a[0]) }},
	"log10": {1, func(a []float64) float64 { return math.Log10(a[0]) }},
	"sin":   {1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos":   {1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"tan":   {1, func(a []float64) float64 { return math.Tan(a[0]) }},
	"round": {1, func(a []float64) float64 { return math.Round(a[0]) }},
	"pow":   {2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
}

var calcConstants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// evaluate parses and computes the expression in one pass.
//
// Grammar, loosest binding first:
//
//	expr  := term (('+'|'-') term)*
//	term  := unary (('*'|'/'|'//'|'%') unary)*
//	unary := ('-'|'+') unary | power
//	power := atom (('**'|'^') unary)?
//	atom  := number | name | name '(' expr (',' expr)* ')' | '(' expr ')'
func evaluate(expression string) (float64, error) {
	tokens, err := tokenize(expression)
	if err != nil {
		return 0, err
	}
	p := &calcParser{tokens: tokens}
	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.tokens) {
		return 0, fmt.Errorf("unexpected token '%s'", p.tokens[p.pos].text)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("result is not a finite number")
	}
	return result, nil
}

type calcTokenKind int

const (
	tokenNumber calcTokenKind = iota
	tokenName
	tokenOperator
	tokenLeftParen
	tokenRightParen
	tokenComma
)

type calcToken struct {
	kind  calcTokenKind
	text  string
	value float64
}

func tokenize(expression string) ([]calcToken, error) {
	tokens := []calcToken{}
	runes := []rune(expression)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			text := string(runes[start:i])
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number '%s'", text)
			}
			tokens = append(tokens, calcToken{kind: tokenNumber, text: text, value: value})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, calcToken{kind: tokenName, text: string(runes[start:i])})
		case r == '(':
			tokens = append(tokens, calcToken{kind: tokenLeftParen, text: "("})
			i++
		case r == ')':
			tokens = append(tokens, calcToken{kind: tokenRightParen, text: ")"})
			i++
		case r == ',':
			tokens = append(tokens, calcToken{kind: tokenComma, text: ","})
			i++
		case strings.ContainsRune("+-*/%^", r):
			text := string(r)
			if i+1 < len(runes) && (text == "*" || text == "/") && runes[i+1] == r {
				text += text
				i++
			}
			tokens = append(tokens, calcToken{kind: tokenOperator, text: text})
			i++
		default:
			return nil, fmt.Errorf("unsupported character '%c'", r)
		}
	}

	return tokens, nil
}

type calcParser struct {
	tokens []calcToken
	pos    int
}

// acceptOperator consumes and reports the current token when it is one
// of the given operators.
func (p *calcParser) acceptOperator(ops ...string) (string, bool) {
	if p.pos >= len(p.tokens) || p.tokens[p.pos].kind != tokenOperator {
		return "", false
	}
	for _, op := range ops {
		if p.tokens[p.pos].text == op {
			p.pos++
			return op, true
		}
	}
	return "", false
}

func (p *calcParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOperator("+", "-")
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *calcParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOperator("*", "/", "//", "%")
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if right == 0 && op != "*" {
			return 0, errDivisionByZero
		}
		switch op {
		case "*":
			left *= right
		case "/":
			left /= right
		case "//":
			left = math.Floor(left / right)
		case "%":
			left = math.Mod(left, right)
		}
	}
}

func (p *calcParser) parseUnary() (float64, error) {
	if op, ok := p.acceptOperator("-", "+"); ok {
		value, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == "-" {
			return -value, nil
		}
		return value, nil
	}
	return p.parsePower()
}

func (p *calcParser) parsePower() (float64, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	// exponentiation is right-associative
	if _, ok := p.acceptOperator("**", "^"); ok {
		exponent, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exponent), nil
	}
	return base, nil
}

func (p *calcParser) parseAtom() (float64, error) {
	if p.pos >= len(p.tokens) {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	tok := p.tokens[p.pos]
	switch tok.kind {
	case tokenNumber:
		p.pos++
		return tok.value, nil

	case tokenName:
		p.pos++
		if p.pos < len(p.tokens) && p.tokens[p.pos].kind == tokenLeftParen {
			return p.parseCall(tok.text)
		}
		if value, ok := calcConstants[tok.text]; ok {
			return value, nil
		}
		if _, ok := calcFunctions[tok.text]; ok {
			return 0, fmt.Errorf("'%s' is a function, not a constant. Call it with ()", tok.text)
		}
		return 0, fmt.Errorf("unknown name: '%s'", tok.text)

	case tokenLeftParen:
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(tokenRightParen, ")"); err != nil {
			return 0, err
		}
		return value, nil
	}

	return 0, fmt.Errorf("unexpected token '%s'", tok.text)
}

func (p *calcParser) parseCall(name string) (float64, error) {
	fn, ok := calcFunctions[name]
	if !ok {
		return 0, fmt.Errorf("function not allowed: '%s'", name)
	}

	p.pos++ // consume '('
	args := []float64{}
	for {
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		args = append(args, value)
		if p.pos < len(p.tokens) && p.tokens[p.pos].kind == tokenComma {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(tokenRightParen, ")"); err != nil {
		return 0, err
	}

	if len(args) != fn.arity {
		return 0, fmt.Errorf("%s expects %d argument(s), got %d", name, fn.arity, len(args))
	}
	return fn.apply(args), nil
}

func (p *calcParser) expect(kind calcTokenKind, text string) error {
	if p.pos >= len(p.tokens) || p.tokens[p.pos].kind != kind {
		return fmt.Errorf("expected '%s'", text)
	}
	p.pos++
	return nil
}

// formatNumber suppresses the trailing .0 on whole numbers.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
