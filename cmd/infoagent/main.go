// Command infoagent runs the tool-using assistant as an interactive
// terminal prompt.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	infoagent "github.com/muhammadjavediqbal/info-agent-langraph"
	"github.com/muhammadjavediqbal/info-agent-langraph/prompts"
	"github.com/muhammadjavediqbal/info-agent-langraph/tools"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	sqlitePath := flag.String("db", "", "SQLite file for conversation transcripts")
	postgresURI := flag.String("postgres", "", "PostgreSQL URI for conversation transcripts")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	cfg, err := infoagent.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *sqlitePath != "" {
		cfg.SQLitePath = *sqlitePath
	}
	if *postgresURI != "" {
		cfg.PostgresURI = *postgresURI
	}

	toolset := []infoagent.Tool{
		tools.NewCalculator(),
		tools.NewWeather(),
		tools.NewSearch(cfg.TavilyAPIKey),
	}

	toolInfos := make([]prompts.ToolInfo, 0, len(toolset))
	for _, tool := range toolset {
		toolInfos = append(toolInfos, prompts.ToolInfo{Name: tool.Name(), Description: tool.Description()})
	}
	prompt, err := prompts.SystemPrompt(toolInfos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering system prompt: %v\n", err)
		os.Exit(1)
	}

	agent := infoagent.NewAgent(prompt, toolset)
	agent.SetMaxIterations(cfg.MaxIterations)

	llm := infoagent.NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.BaseURL, cfg.Model)

	storage, err := openStorage(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	if storage != nil {
		defer storage.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("InfoAgent  |  Model: %s\n", cfg.Model)
	fmt.Println("Type 'exit' to quit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			break
		}

		runOnce(ctx, llm, cfg.Model, agent, storage, input)
		if ctx.Err() != nil {
			break
		}
	}
	fmt.Println("Goodbye!")
}

func openStorage(cfg *infoagent.Config) (infoagent.Storage, error) {
	switch {
	case cfg.PostgresURI != "":
		return infoagent.NewPostgresStorage(cfg.PostgresURI)
	case cfg.SQLitePath != "":
		return infoagent.NewSQLiteStorage(cfg.SQLitePath)
	}
	return nil, nil
}

// runOnce feeds a single user message through a fresh session and
// prints the responses. Tool failures have already been folded into
// the conversation by the agent; an error response here means the LLM
// call itself failed, which is fatal.
func runOnce(ctx context.Context, llm infoagent.LLM, model string, agent *infoagent.Agent, storage infoagent.Storage, input string) {
	session := infoagent.NewSession(ctx, llm, model, agent, storage)
	defer session.Close()

	session.In(input)
	for {
		response := session.Out()
		switch response.Type {
		case infoagent.ResponseTypeStatus:
			fmt.Printf("... %s\n", response.Content)
		case infoagent.ResponseTypeFinal:
			fmt.Printf("\n%s\n\n", agent.FormatAnswer(ctx, response.Content))
			logCost(session, model)
		case infoagent.ResponseTypeError:
			if ctx.Err() != nil {
				return
			}
			fmt.Fprintf(os.Stderr, "Error: %s\n", response.Content)
			os.Exit(1)
		case infoagent.ResponseTypeEnd:
			return
		}
	}
}

func logCost(session *infoagent.Session, model string) {
	details, ok := session.Cost()
	if !ok {
		return
	}
	slog.Debug("Session usage",
		"model", model,
		"inputTokens", details.InputTokens,
		"outputTokens", details.OutputTokens,
		"cost", fmt.Sprintf("$%.6f", details.TotalCost),
	)
}
