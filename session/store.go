package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/hupe1980/convokit/core"
	"github.com/hupe1980/convokit/logging"
)

// ErrPersist marks a failed snapshot write. The in-memory store remains
// authoritative after this error; callers log and continue.
var ErrPersist = errors.New("persist context store")

// contextPreviewRunes bounds per-message content in the RelevantContext block.
const contextPreviewRunes = 100

// Options configure a FileStore.
type Options struct {
	// Logger receives persistence and lifecycle notices. Defaults to NoOpLogger.
	Logger logging.Logger
}

// FileStore is the file-backed core.ContextStore. Sessions live in a process
// local map; the whole map is serialized to one JSON document after every
// mutation. Safe for concurrent access; each returned context is a deep
// clone to prevent external mutation of internal state.
type FileStore struct {
	mu       sync.RWMutex
	contexts map[string]*core.ConversationContext
	locks    map[string]*sync.Mutex
	path     string
	logger   logging.Logger
}

// NewFileStore opens (or creates) the store backed by the JSON file at path.
// An existing file is read wholesale; a missing file starts the store empty.
func NewFileStore(path string, optFns ...func(o *Options)) (*FileStore, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	s := &FileStore{
		contexts: map[string]*core.ConversationContext{},
		locks:    map[string]*sync.Mutex{},
		path:     path,
		logger:   opts.Logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the snapshot file if it exists and normalizes the decoded
// contexts so every map and slice is non-nil.
func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read context store %s: %w", s.path, err)
	}

	decoded := map[string]*core.ConversationContext{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decode context store %s: %w", s.path, err)
	}

	for sessionID, ctx := range decoded {
		ctx.SessionID = sessionID
		if ctx.Messages == nil {
			ctx.Messages = []core.Message{}
		}
		if ctx.UserPreferences == nil {
			ctx.UserPreferences = map[string]any{}
		}
		if ctx.LastEntities == nil {
			ctx.LastEntities = []core.Entity{}
		}
		s.contexts[sessionID] = ctx
	}
	s.logger.Info("context store loaded", "path", s.path, "sessions", len(s.contexts))
	return nil
}

// sessionLock returns the mutex serializing updates for one session id.
func (s *FileStore) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// GetOrCreate returns a clone of the session's context, lazily creating an
// empty one. Creation is idempotent and never fails.
func (s *FileStore) GetOrCreate(sessionID string) (*core.ConversationContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(sessionID).Clone(), nil
}

// getOrCreateLocked allocates and stores a new context when absent; the
// caller must hold the write lock.
func (s *FileStore) getOrCreateLocked(sessionID string) *core.ConversationContext {
	if ctx, ok := s.contexts[sessionID]; ok {
		return ctx
	}
	ctx := core.NewConversationContext(sessionID)
	s.contexts[sessionID] = ctx
	return ctx
}

// Update stamps the message, appends it, refreshes derived state and
// persists the store. When an intent is supplied the topic is recomputed
// from the trailing core.TopicWindow messages; a window without entities
// leaves the previous topic in place. The history is truncated to the most
// recent core.MaxContextMessages entries, oldest first.
func (s *FileStore) Update(sessionID string, msg core.Message, intent core.IntentName, entities []core.Entity) error {
	if intent != "" && !intent.Valid() {
		return fmt.Errorf("unknown intent name %q", intent)
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	ctx := s.getOrCreateLocked(sessionID)

	msg.Intent = intent
	msg.Entities = entities
	ctx.Messages = append(ctx.Messages, msg)

	if len(entities) > 0 {
		ctx.LastEntities = append([]core.Entity{}, entities...)
	}

	if intent != "" {
		window := ctx.Messages
		if len(window) > core.TopicWindow {
			window = window[len(window)-core.TopicWindow:]
		}
		if topic, ok := inferTopic(window); ok {
			ctx.Topic = topic
		}
	}

	if len(ctx.Messages) > core.MaxContextMessages {
		trimmed := make([]core.Message, core.MaxContextMessages)
		copy(trimmed, ctx.Messages[len(ctx.Messages)-core.MaxContextMessages:])
		ctx.Messages = trimmed
	}

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return s.persist(snapshot)
}

// RelevantContext formats the last maxMessages turns plus the topic line for
// prompt injection. The query parameter is accepted for interface stability;
// selection is purely recency based. Returns "" when the session has no
// history.
func (s *FileStore) RelevantContext(query, sessionID string, maxMessages int) (string, error) {
	s.mu.RLock()
	ctx, ok := s.contexts[sessionID]
	if !ok || len(ctx.Messages) == 0 {
		s.mu.RUnlock()
		return "", nil
	}

	recent := ctx.Messages
	if maxMessages > 0 && len(recent) > maxMessages {
		recent = recent[len(recent)-maxMessages:]
	}

	var sb strings.Builder
	sb.WriteString("Previous conversation:\n")
	for _, msg := range recent {
		role := "Assistant"
		if msg.Role == core.RoleUser {
			role = "User"
		}
		sb.WriteString(role)
		sb.WriteString(": ")
		sb.WriteString(truncateRunes(msg.Content, contextPreviewRunes))
		sb.WriteString("...\n")
	}
	if ctx.Topic != "" {
		sb.WriteString("\nCurrent topic: ")
		sb.WriteString(ctx.Topic)
		sb.WriteString("\n")
	}
	s.mu.RUnlock()
	return sb.String(), nil
}

// Summarize reports message counts, the distinct intents seen among user
// turns (first-seen order) and the current topic.
func (s *FileStore) Summarize(sessionID string) (core.ContextSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := core.ContextSummary{SessionID: sessionID, Intents: []core.IntentName{}}
	ctx, ok := s.contexts[sessionID]
	if !ok {
		return summary, nil
	}

	summary.TotalMessages = len(ctx.Messages)
	summary.Topic = ctx.Topic
	seen := map[core.IntentName]bool{}
	for _, msg := range ctx.Messages {
		if msg.Role != core.RoleUser {
			continue
		}
		summary.UserMessages++
		if msg.Intent != "" && !seen[msg.Intent] {
			seen[msg.Intent] = true
			summary.Intents = append(summary.Intents, msg.Intent)
		}
	}
	return summary, nil
}

// Clear deletes the session's context entirely and persists. Clearing an
// absent session is a no-op that still rewrites the snapshot.
func (s *FileStore) Clear(sessionID string) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	delete(s.contexts, sessionID)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return s.persist(snapshot)
}

// Preferences returns a copy of the session's user preferences.
func (s *FileStore) Preferences(sessionID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx := s.getOrCreateLocked(sessionID)
	prefs := make(map[string]any, len(ctx.UserPreferences))
	for k, v := range ctx.UserPreferences {
		prefs[k] = v
	}
	return prefs, nil
}

// SetPreferences merges the given preferences into the session and persists.
func (s *FileStore) SetPreferences(sessionID string, prefs map[string]any) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	ctx := s.getOrCreateLocked(sessionID)
	for k, v := range prefs {
		ctx.UserPreferences[k] = v
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return s.persist(snapshot)
}

// Sessions returns the ids of every stored session.
func (s *FileStore) Sessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.contexts))
	for id := range s.contexts {
		ids = append(ids, id)
	}
	return ids
}

// snapshotLocked deep-copies the store for serialization outside the lock;
// the caller must hold the write lock.
func (s *FileStore) snapshotLocked() map[string]*core.ConversationContext {
	snapshot := make(map[string]*core.ConversationContext, len(s.contexts))
	for id, ctx := range s.contexts {
		snapshot[id] = ctx.Clone()
	}
	return snapshot
}

// persist rewrites the whole snapshot file. Writes go to a temp file in the
// same directory followed by a rename, so a crash mid-write leaves the
// previous snapshot intact.
func (s *FileStore) persist(snapshot map[string]*core.ConversationContext) error {
	start := time.Now()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		s.logger.Error("context store snapshot failed", "path", s.path, "error", err)
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp*")
	if err != nil {
		s.logger.Error("context store snapshot failed", "path", s.path, "error", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		s.logger.Error("context store snapshot failed", "path", s.path, "error", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		s.logger.Error("context store snapshot failed", "path", s.path, "error", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		s.logger.Error("context store snapshot failed", "path", s.path, "error", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	s.logger.Debug("context store persisted", "path", s.path, "sessions", len(snapshot), "duration", time.Since(start))
	return nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
