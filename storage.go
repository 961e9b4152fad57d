package infoagent

import (
	"context"
	"time"
)

// Exchange is one completed user/assistant turn.
type Exchange struct {
	ID               string
	SessionID        string
	UserMessage      string
	AssistantMessage string
	CreatedAt        time.Time
}

// Storage persists completed exchanges so transcripts survive the
// process. The agent loop never depends on it; sessions write through
// it only when one is attached.
type Storage interface {
	SaveExchange(ctx context.Context, sessionID string, userMessage string, assistantMessage string) error
	History(ctx context.Context, sessionID string, limit int) ([]Exchange, error)
	Close() error
}
