package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/convokit/core"
	"github.com/hupe1980/convokit/internal/testutil"
)

// Interface compliance (compile-time assertion)
var _ core.ContextStore = (*FileStore)(nil)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contexts.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store, path
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)

	ctx, err := store.GetOrCreate("s1")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if ctx.SessionID != "s1" {
		t.Errorf("expected session id s1, got %q", ctx.SessionID)
	}
	if len(ctx.Messages) != 0 {
		t.Errorf("new session should be empty, got %d messages", len(ctx.Messages))
	}

	again, err := store.GetOrCreate("s1")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if len(again.Messages) != 0 {
		t.Error("repeated GetOrCreate must not mutate the session")
	}
}

func TestGetOrCreate_ReturnsClone(t *testing.T) {
	store, _ := newTestStore(t)

	mustUpdate(t, store, "s1", testutil.UserTurn("hello", core.EmotionNeutral), core.IntentGeneralChat, nil)

	ctx, _ := store.GetOrCreate("s1")
	ctx.Messages[0].Content = "tampered"
	ctx.UserPreferences["k"] = "v"

	fresh, _ := store.GetOrCreate("s1")
	if fresh.Messages[0].Content != "hello" {
		t.Error("caller mutation leaked into the store")
	}
	if len(fresh.UserPreferences) != 0 {
		t.Error("caller preference mutation leaked into the store")
	}
}

func TestUpdate_StampsAndAppendsInOrder(t *testing.T) {
	store, _ := newTestStore(t)

	entities := []core.Entity{{Type: core.EntityMLConcept, Value: "cnn", Start: 0, End: 3}}
	mustUpdate(t, store, "s1", testutil.UserTurn("what is a cnn?", core.EmotionNeutral), core.IntentMLQuestion, entities)
	mustUpdate(t, store, "s1", testutil.AssistantTurn("a convolutional network"), "", nil)

	ctx, _ := store.GetOrCreate("s1")
	if len(ctx.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(ctx.Messages))
	}
	if ctx.Messages[0].Intent != core.IntentMLQuestion {
		t.Errorf("user message not stamped with intent: %q", ctx.Messages[0].Intent)
	}
	if len(ctx.Messages[0].Entities) != 1 {
		t.Errorf("user message not stamped with entities: %+v", ctx.Messages[0].Entities)
	}
	if ctx.Messages[1].Role != core.RoleAssistant {
		t.Error("messages out of chronological order")
	}
	if len(ctx.LastEntities) != 1 || ctx.LastEntities[0].Value != "cnn" {
		t.Errorf("LastEntities not refreshed: %+v", ctx.LastEntities)
	}
}

func TestUpdate_RejectsUnknownIntent(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Update("s1", testutil.UserTurn("hi", core.EmotionNeutral), core.IntentName("banter"), nil)
	if err == nil {
		t.Fatal("expected error for unknown intent name")
	}
}

func TestUpdate_TruncatesToWindow(t *testing.T) {
	store, _ := newTestStore(t)

	total := core.MaxContextMessages + 10
	for i := 0; i < total; i++ {
		msg := testutil.UserTurn(fmt.Sprintf("message %d", i), core.EmotionNeutral)
		mustUpdate(t, store, "s1", msg, core.IntentGeneralChat, nil)
	}

	ctx, _ := store.GetOrCreate("s1")
	if len(ctx.Messages) != core.MaxContextMessages {
		t.Fatalf("expected %d messages, got %d", core.MaxContextMessages, len(ctx.Messages))
	}
	// Oldest entries drop first.
	if got := ctx.Messages[0].Content; got != "message 10" {
		t.Errorf("expected oldest surviving message to be %q, got %q", "message 10", got)
	}
	if got := ctx.Messages[len(ctx.Messages)-1].Content; got != fmt.Sprintf("message %d", total-1) {
		t.Errorf("newest message missing, got %q", got)
	}
}

func TestUpdate_TopicFollowsRecentEntities(t *testing.T) {
	store, _ := newTestStore(t)

	entities := []core.Entity{{Type: core.EntityMLConcept, Value: "cnn"}}
	mustUpdate(t, store, "s1", testutil.UserTurn("cnn question", core.EmotionNeutral), core.IntentMLQuestion, entities)

	ctx, _ := store.GetOrCreate("s1")
	if ctx.Topic != string(core.EntityMLConcept) {
		t.Fatalf("expected topic ml_concept, got %q", ctx.Topic)
	}
}

func TestUpdate_TopicIsSticky(t *testing.T) {
	store, _ := newTestStore(t)

	entities := []core.Entity{{Type: core.EntityMLConcept, Value: "cnn"}}
	mustUpdate(t, store, "s1", testutil.UserTurn("cnn question", core.EmotionNeutral), core.IntentMLQuestion, entities)

	// Enough entity-free turns to push the entity message out of the topic
	// window; the topic keeps its previous value regardless.
	for i := 0; i < core.TopicWindow+1; i++ {
		mustUpdate(t, store, "s1", testutil.UserTurn("plain follow-up", core.EmotionNeutral), core.IntentGeneralChat, nil)
	}

	ctx, _ := store.GetOrCreate("s1")
	if ctx.Topic != string(core.EntityMLConcept) {
		t.Errorf("topic should stay sticky without new entities, got %q", ctx.Topic)
	}
}

func TestUpdate_AssistantTurnsDoNotRecomputeTopic(t *testing.T) {
	store, _ := newTestStore(t)

	entities := []core.Entity{{Type: core.EntityProgrammingLanguage, Value: "python"}}
	mustUpdate(t, store, "s1", testutil.UserTurn("python question", core.EmotionNeutral), core.IntentCodeDebug, entities)
	// Empty intent marks an unclassified (assistant) turn.
	mustUpdate(t, store, "s1", testutil.AssistantTurn("try this"), "", nil)

	ctx, _ := store.GetOrCreate("s1")
	if ctx.Topic != string(core.EntityProgrammingLanguage) {
		t.Errorf("assistant turn must not change the topic, got %q", ctx.Topic)
	}
}

func TestRelevantContext_Format(t *testing.T) {
	store, _ := newTestStore(t)

	entities := []core.Entity{{Type: core.EntityMLConcept, Value: "cnn"}}
	mustUpdate(t, store, "s1", testutil.UserTurn("what is a cnn?", core.EmotionNeutral), core.IntentMLQuestion, entities)
	mustUpdate(t, store, "s1", testutil.AssistantTurn("a convolutional network"), "", nil)

	block, err := store.RelevantContext("follow up", "s1", 3)
	if err != nil {
		t.Fatalf("RelevantContext: %v", err)
	}
	if !strings.HasPrefix(block, "Previous conversation:\n") {
		t.Errorf("missing header: %q", block)
	}
	if !strings.Contains(block, "User: what is a cnn?...") {
		t.Errorf("missing user line: %q", block)
	}
	if !strings.Contains(block, "Assistant: a convolutional network...") {
		t.Errorf("missing assistant line: %q", block)
	}
	if !strings.Contains(block, "Current topic: ml_concept") {
		t.Errorf("missing topic line: %q", block)
	}
}

func TestRelevantContext_EmptySession(t *testing.T) {
	store, _ := newTestStore(t)

	block, err := store.RelevantContext("anything", "missing", 3)
	if err != nil {
		t.Fatalf("RelevantContext: %v", err)
	}
	if block != "" {
		t.Errorf("expected empty block for unknown session, got %q", block)
	}
}

func TestRelevantContext_TruncatesLongMessages(t *testing.T) {
	store, _ := newTestStore(t)

	long := strings.Repeat("x", 150)
	mustUpdate(t, store, "s1", testutil.UserTurn(long, core.EmotionNeutral), core.IntentGeneralChat, nil)

	block, _ := store.RelevantContext("q", "s1", 3)
	want := "User: " + strings.Repeat("x", contextPreviewRunes) + "...\n"
	if !strings.Contains(block, want) {
		t.Errorf("content not truncated to %d runes: %q", contextPreviewRunes, block)
	}
}

func TestRelevantContext_RespectsMaxMessages(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < 5; i++ {
		mustUpdate(t, store, "s1", testutil.UserTurn(fmt.Sprintf("turn %d", i), core.EmotionNeutral), core.IntentGeneralChat, nil)
	}

	block, _ := store.RelevantContext("q", "s1", 2)
	if strings.Contains(block, "turn 2") {
		t.Errorf("older turn leaked into limited window: %q", block)
	}
	if !strings.Contains(block, "turn 3") || !strings.Contains(block, "turn 4") {
		t.Errorf("latest turns missing from window: %q", block)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store, path := newTestStore(t)

	entities := []core.Entity{{Type: core.EntityMLConcept, Value: "lstm"}}
	mustUpdate(t, store, "s1", testutil.UserTurn("lstm question", core.EmotionConfused), core.IntentMLQuestion, entities)
	if err := store.SetPreferences("s1", map[string]any{"lang": "en"}); err != nil {
		t.Fatalf("SetPreferences: %v", err)
	}

	reloaded, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	ctx, _ := reloaded.GetOrCreate("s1")
	if len(ctx.Messages) != 1 {
		t.Fatalf("expected 1 message after reload, got %d", len(ctx.Messages))
	}
	if ctx.Messages[0].Intent != core.IntentMLQuestion {
		t.Error("intent lost in round trip")
	}
	if ctx.Messages[0].Sentiment == nil || ctx.Messages[0].Sentiment.Emotion != core.EmotionConfused {
		t.Error("sentiment label lost in round trip")
	}
	if ctx.Topic != string(core.EntityMLConcept) {
		t.Errorf("topic lost in round trip: %q", ctx.Topic)
	}
	prefs, _ := reloaded.Preferences("s1")
	if prefs["lang"] != "en" {
		t.Errorf("preferences lost in round trip: %+v", prefs)
	}
}

func TestNewFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contexts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path); err == nil {
		t.Fatal("expected error for corrupt snapshot file")
	}
}

func TestClear(t *testing.T) {
	store, _ := newTestStore(t)

	mustUpdate(t, store, "s1", testutil.UserTurn("hello", core.EmotionNeutral), core.IntentGeneralChat, nil)
	if err := store.Clear("s1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	ctx, _ := store.GetOrCreate("s1")
	if len(ctx.Messages) != 0 {
		t.Error("cleared session should start empty")
	}

	// Clearing an absent session is a no-op.
	if err := store.Clear("never-existed"); err != nil {
		t.Errorf("Clear of absent session: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	store, _ := newTestStore(t)

	mustUpdate(t, store, "s1", testutil.UserTurn("what is a cnn?", core.EmotionNeutral), core.IntentMLQuestion, nil)
	mustUpdate(t, store, "s1", testutil.AssistantTurn("a convolutional network"), "", nil)
	mustUpdate(t, store, "s1", testutil.UserTurn("fix my code", core.EmotionNeutral), core.IntentCodeDebug, nil)
	mustUpdate(t, store, "s1", testutil.UserTurn("and explain cnns again", core.EmotionNeutral), core.IntentMLQuestion, nil)

	summary, err := store.Summarize("s1")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.TotalMessages != 4 {
		t.Errorf("expected 4 total messages, got %d", summary.TotalMessages)
	}
	if summary.UserMessages != 3 {
		t.Errorf("expected 3 user messages, got %d", summary.UserMessages)
	}
	// Distinct intents in first-seen order.
	if len(summary.Intents) != 2 || summary.Intents[0] != core.IntentMLQuestion || summary.Intents[1] != core.IntentCodeDebug {
		t.Errorf("unexpected intents: %+v", summary.Intents)
	}
}

func TestSetPreferences_Merges(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.SetPreferences("s1", map[string]any{"a": "1", "b": "2"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetPreferences("s1", map[string]any{"b": "3"}); err != nil {
		t.Fatal(err)
	}

	prefs, _ := store.Preferences("s1")
	if prefs["a"] != "1" || prefs["b"] != "3" {
		t.Errorf("preferences not merged: %+v", prefs)
	}
}

func mustUpdate(t *testing.T, store *FileStore, sessionID string, msg core.Message, intent core.IntentName, entities []core.Entity) {
	t.Helper()
	if err := store.Update(sessionID, msg, intent, entities); err != nil {
		t.Fatalf("Update: %v", err)
	}
}
