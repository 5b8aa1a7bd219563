package testutil

import (
	"time"

	"github.com/hupe1980/convokit/core"
)

// MessageBuilder provides a fluent helper for constructing messages in tests.
// Example:
//
//	msg := NewMessageBuilder().User("this is broken").Emotion(core.EmotionFrustrated, -0.6).Build()
//
// Chain only the parts you need; sensible defaults are applied.
type MessageBuilder struct {
	role      core.Role
	content   string
	id        string
	timestamp time.Time
	intent    core.IntentName
	sentiment *core.SentimentLabel
	entities  []core.Entity
}

// NewMessageBuilder creates a builder defaulting to an empty user message.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{role: core.RoleUser, timestamp: time.Now().UTC()}
}

// User sets user role and content (chainable).
func (b *MessageBuilder) User(content string) *MessageBuilder {
	b.role = core.RoleUser
	b.content = content
	return b
}

// Assistant sets assistant role and content (chainable).
func (b *MessageBuilder) Assistant(content string) *MessageBuilder {
	b.role = core.RoleAssistant
	b.content = content
	return b
}

// ID overrides the auto-generated message id (chainable). Use where
// determinism matters.
func (b *MessageBuilder) ID(id string) *MessageBuilder { b.id = id; return b }

// At overrides the timestamp (chainable).
func (b *MessageBuilder) At(t time.Time) *MessageBuilder { b.timestamp = t; return b }

// Intent stamps the classified intent (chainable).
func (b *MessageBuilder) Intent(name core.IntentName) *MessageBuilder {
	b.intent = name
	return b
}

// Emotion stamps a sentiment label with the given emotion and polarity
// (chainable). Confidence defaults to 0.5.
func (b *MessageBuilder) Emotion(emotion core.Emotion, polarity float64) *MessageBuilder {
	b.sentiment = &core.SentimentLabel{Polarity: polarity, Emotion: emotion, Confidence: 0.5}
	return b
}

// Entities appends extracted entities (chainable).
func (b *MessageBuilder) Entities(entities ...core.Entity) *MessageBuilder {
	b.entities = append(b.entities, entities...)
	return b
}

// Build returns the assembled core.Message.
func (b *MessageBuilder) Build() core.Message {
	msg := core.Message{
		ID:        b.id,
		Role:      b.role,
		Content:   b.content,
		Timestamp: b.timestamp,
		Intent:    b.intent,
		Sentiment: b.sentiment,
		Entities:  b.entities,
	}
	if msg.ID == "" {
		msg.ID = core.NewID()
	}
	return msg
}

// UserTurn is shorthand for a user message with an emotion label, the most
// common shape in escalation and store tests.
func UserTurn(content string, emotion core.Emotion) core.Message {
	polarity := 0.0
	if emotion.Negative() {
		polarity = -0.5
	} else if emotion == core.EmotionPositive || emotion == core.EmotionSatisfied {
		polarity = 0.5
	}
	return NewMessageBuilder().User(content).Emotion(emotion, polarity).Build()
}

// AssistantTurn is shorthand for a plain assistant message.
func AssistantTurn(content string) core.Message {
	return NewMessageBuilder().Assistant(content).Build()
}
