// Package infoagent - errors.go
// Defines session-specific errors.

package infoagent

import "errors"

var (
	ErrSessionClosed = errors.New("session has been closed")
	ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY not set. Add it to the environment, a .env file or the config file")
)
