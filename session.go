// Package infoagent - session.go
// The Session struct holds per-conversation state and methods for
// feeding user input in and reading agent output back out.
package infoagent

import (
	"context"
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Session holds ephemeral conversation data & references to shared
// resources. A session handles a single user message: one In, then
// Out until ResponseTypeEnd.
type Session struct {
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	inUserChannel  chan string
	outUserChannel chan Response

	llm     LLM
	model   string
	agent   *Agent
	storage Storage // optional, may be nil

	State *SessionState

	logger *slog.Logger
}

// NewSession constructs a session with references to the shared LLM &
// agent, but isolated state.
func NewSession(ctx context.Context, llm LLM, model string, ag *Agent, storage Storage) *Session {
	sessionID, err := gonanoid.New()
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithCancel(ctx)
	ctx = context.WithValue(ctx, ContextKey("sessionID"), sessionID)
	s := &Session{
		ctx:       ctx,
		cancel:    cancel,
		closeOnce: sync.Once{},

		inUserChannel:  make(chan string),
		outUserChannel: make(chan Response),

		llm:     llm,
		model:   model,
		agent:   ag,
		storage: storage,

		State: NewSessionState(),

		logger: slog.Default(),
	}
	go s.run()
	return s
}

func (s *Session) ID() string {
	return s.ctx.Value(ContextKey("sessionID")).(string)
}

// In hands the user message to the session.
func (s *Session) In(userMessage string) {
	s.inUserChannel <- userMessage
}

// Out retrieves the next response from the output channel, blocking
// until one is available.
func (s *Session) Out() Response {
	response := <-s.outUserChannel
	return response
}

// Close ends the session lifecycle and releases any resources if
// needed. The output channel stays open here: run owns it and closes
// it once its final send is done, so Close can never race a pending
// send into a panic.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.inUserChannel)
	})
}

// send delivers a response to the caller unless the session has been
// closed, in which case it reports false.
func (s *Session) send(response Response) bool {
	select {
	case s.outUserChannel <- response:
		return true
	case <-s.ctx.Done():
		return false
	}
}

// run is the main loop for the session. It waits for the user message,
// hands it to the agent, relays agent responses to the caller and
// persists the completed exchange when a storage backend is attached.
func (s *Session) run() {
	s.logger.Info("Session started", "sessionID", s.ID())
	defer close(s.outUserChannel)
	defer s.Close()
	select {
	case <-s.ctx.Done():
		s.send(Response{Type: ResponseTypeEnd})
	case userMessage, ok := <-s.inUserChannel:
		if !ok {
			s.logger.Error("Session input channel closed")
			return
		}

		s.State.MessageHistory.Add(UserMessage(userMessage))

		internalChannel := make(chan Response)
		go s.agent.Run(s.ctx, s.llm, s.model, s.State, internalChannel)

		var finalAnswer string
		for response := range internalChannel {
			if response.Type == ResponseTypeFinal {
				finalAnswer = response.Content
			}
			if !s.send(response) {
				// caller is gone; keep draining so the agent
				// goroutine can finish
				for range internalChannel {
				}
				return
			}
		}

		if s.storage != nil && finalAnswer != "" {
			if err := s.storage.SaveExchange(s.ctx, s.ID(), userMessage, finalAnswer); err != nil {
				s.logger.Error("Error saving conversation", "error", err)
			}
		}

		// Run is done, send the end message
		s.send(Response{Type: ResponseTypeEnd})
	}
}
