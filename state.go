package infoagent

// SessionState is the per-conversation mutable state: the append-only
// message history plus accumulated token usage.
type SessionState struct {
	MessageHistory *MessageList
	Usage          Usage
}

func NewSessionState() *SessionState {
	return &SessionState{
		MessageHistory: NewMessageList(),
	}
}
