package core

// MaxContextMessages bounds the rolling message window of a session. After
// every append the history is truncated to the most recent MaxContextMessages
// entries, oldest first.
const MaxContextMessages = 50

// TopicWindow is the number of trailing messages examined when inferring the
// session topic.
const TopicWindow = 5

// ConversationContext is the per-session conversational memory: a bounded,
// chronologically ordered message window plus lightweight derived state
// (topic, last seen entities, user preferences).
//
// Contract:
//   - Messages are insertion ordered (oldest first) and never exceed
//     MaxContextMessages
//   - Topic holds the dominant entity type recently discussed; it is sticky
//     and keeps its previous value when a topic pass finds no entities
//   - Instances are owned by the ContextStore; callers read via clones and
//     mutate only through Update
type ConversationContext struct {
	SessionID       string         `json:"session_id"`
	Messages        []Message      `json:"messages"`
	UserPreferences map[string]any `json:"user_preferences"`
	Topic           string         `json:"topic,omitempty"`
	LastEntities    []Entity       `json:"last_entities"`
}

// NewConversationContext creates an empty context for the session id.
func NewConversationContext(sessionID string) *ConversationContext {
	return &ConversationContext{
		SessionID:       sessionID,
		Messages:        []Message{},
		UserPreferences: map[string]any{},
		LastEntities:    []Entity{},
	}
}

// Clone returns a deep copy safe for independent mutation.
func (c *ConversationContext) Clone() *ConversationContext {
	clone := &ConversationContext{
		SessionID:       c.SessionID,
		Messages:        make([]Message, len(c.Messages)),
		UserPreferences: make(map[string]any, len(c.UserPreferences)),
		Topic:           c.Topic,
		LastEntities:    make([]Entity, len(c.LastEntities)),
	}
	copy(clone.Messages, c.Messages)
	copy(clone.LastEntities, c.LastEntities)
	for k, v := range c.UserPreferences {
		clone.UserPreferences[k] = v
	}
	return clone
}

// UserMessages returns the user-authored subset of the history in order.
func (c *ConversationContext) UserMessages() []Message {
	res := make([]Message, 0, len(c.Messages))
	for _, m := range c.Messages {
		if m.Role == RoleUser {
			res = append(res, m)
		}
	}
	return res
}

// ContextSummary condenses a session's history for analytics consumers.
type ContextSummary struct {
	SessionID     string       `json:"session_id"`
	TotalMessages int          `json:"total_messages"`
	UserMessages  int          `json:"user_messages"`
	Intents       []IntentName `json:"intents"`
	Topic         string       `json:"topic,omitempty"`
}

// ContextStore owns every ConversationContext. Callers receive clones for
// reading and route all mutation through Update / SetPreferences / Clear.
// Implementations serialize updates per session id.
type ContextStore interface {
	// GetOrCreate returns the session's context, creating an empty one on
	// first access. Creation is idempotent.
	GetOrCreate(sessionID string) (*ConversationContext, error)
	// Update stamps the message with intent/entities, appends it, refreshes
	// LastEntities and (when an intent was supplied) the topic, truncates the
	// window and persists the store. Pass an empty intent for messages that
	// carry no classification (assistant turns).
	Update(sessionID string, msg Message, intent IntentName, entities []Entity) error
	// RelevantContext formats the last maxMessages turns plus the topic line
	// for prompt injection. Empty string when the session has no history.
	RelevantContext(query, sessionID string, maxMessages int) (string, error)
	// Summarize reports message counts, distinct user intents and the topic.
	Summarize(sessionID string) (ContextSummary, error)
	// Clear deletes the session's context entirely and persists.
	Clear(sessionID string) error
	// Preferences returns a copy of the session's user preferences.
	Preferences(sessionID string) (map[string]any, error)
	// SetPreferences merges the given preferences into the session and persists.
	SetPreferences(sessionID string, prefs map[string]any) error
}
