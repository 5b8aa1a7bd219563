package core

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a Message.
type Role string

const (
	// RoleUser is a message authored by the end user.
	RoleUser Role = "user"
	// RoleAssistant is a message authored by the assistant.
	RoleAssistant Role = "assistant"
)

// SentimentLabel is the sentiment subset stamped onto a user Message before
// it is appended to a session.
type SentimentLabel struct {
	Polarity   float64 `json:"polarity"`
	Emotion    Emotion `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Message is one conversational turn. It is created at turn time, stamped
// with analysis metadata (intent, sentiment, entities) and appended to a
// session's history; after the append it must be treated as immutable.
// Timestamp serializes as RFC 3339 (ISO 8601).
type Message struct {
	ID        string          `json:"id"`
	Role      Role            `json:"role"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
	Intent    IntentName      `json:"intent,omitempty"`
	Sentiment *SentimentLabel `json:"sentiment,omitempty"`
	Entities  []Entity        `json:"entities,omitempty"`
}

// NewMessage creates a bare message with a fresh id and a UTC timestamp.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        NewID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewUserMessage is a convenience wrapper for a user-authored message.
func NewUserMessage(content string) Message { return NewMessage(RoleUser, content) }

// NewAssistantMessage is a convenience wrapper for an assistant-authored message.
func NewAssistantMessage(content string) Message { return NewMessage(RoleAssistant, content) }

// NewID generates a unique identifier for messages.
func NewID() string { return uuid.NewString() }
