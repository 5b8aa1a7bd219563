package core

import "testing"

func TestIntentName_Valid(t *testing.T) {
	for _, name := range IntentNames {
		if !name.Valid() {
			t.Errorf("expected %q to be valid", name)
		}
	}
	if IntentName("banter").Valid() {
		t.Error("unknown intent should not be valid")
	}
}

func TestParseIntentName(t *testing.T) {
	name, err := ParseIntentName("code_debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != IntentCodeDebug {
		t.Errorf("expected code_debug, got %q", name)
	}

	if _, err := ParseIntentName("small_talk"); err == nil {
		t.Error("expected error for unknown intent name")
	}
}

func TestEmotion_Negative(t *testing.T) {
	negatives := []Emotion{EmotionFrustrated, EmotionAngry, EmotionNegative}
	for _, e := range negatives {
		if !e.Negative() {
			t.Errorf("expected %q to count as negative", e)
		}
	}
	for _, e := range []Emotion{EmotionUrgent, EmotionSatisfied, EmotionConfused, EmotionPositive, EmotionNeutral} {
		if e.Negative() {
			t.Errorf("expected %q to not count as negative", e)
		}
	}
}

func TestParseEmotion(t *testing.T) {
	e, err := ParseEmotion("angry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e != EmotionAngry {
		t.Errorf("expected angry, got %q", e)
	}

	if _, err := ParseEmotion("ecstatic"); err == nil {
		t.Error("expected error for unknown emotion")
	}
}

func TestNewSentimentScore_Clamps(t *testing.T) {
	score := NewSentimentScore(-2.0, 1.5, EmotionNeutral, 0.0)
	if score.Polarity != -1 {
		t.Errorf("polarity not clamped: %v", score.Polarity)
	}
	if score.Subjectivity != 1 {
		t.Errorf("subjectivity not clamped: %v", score.Subjectivity)
	}
	if score.Confidence != MinConfidence {
		t.Errorf("confidence not clamped to floor: %v", score.Confidence)
	}

	score = NewSentimentScore(0.5, 0.5, EmotionPositive, 5.0)
	if score.Confidence != MaxConfidence {
		t.Errorf("confidence not clamped to ceiling: %v", score.Confidence)
	}
}

func TestSentimentScore_Label(t *testing.T) {
	score := NewSentimentScore(-0.4, 0.8, EmotionFrustrated, 0.7)
	label := score.Label()
	if label.Polarity != score.Polarity || label.Emotion != score.Emotion || label.Confidence != score.Confidence {
		t.Errorf("label does not mirror score: %+v vs %+v", label, score)
	}
}

func TestConversationContext_Clone(t *testing.T) {
	ctx := NewConversationContext("s1")
	ctx.Messages = append(ctx.Messages, NewUserMessage("hello"))
	ctx.UserPreferences["lang"] = "en"
	ctx.LastEntities = append(ctx.LastEntities, Entity{Type: EntityMLConcept, Value: "cnn"})
	ctx.Topic = "ml_concept"

	clone := ctx.Clone()
	if clone == ctx {
		t.Fatal("Clone should be a different pointer")
	}

	clone.Messages[0].Content = "changed"
	clone.UserPreferences["lang"] = "de"
	clone.LastEntities[0].Value = "rnn"

	if ctx.Messages[0].Content != "hello" {
		t.Error("clone mutation leaked into original messages")
	}
	if ctx.UserPreferences["lang"] != "en" {
		t.Error("clone mutation leaked into original preferences")
	}
	if ctx.LastEntities[0].Value != "cnn" {
		t.Error("clone mutation leaked into original entities")
	}
}

func TestConversationContext_UserMessages(t *testing.T) {
	ctx := NewConversationContext("s1")
	ctx.Messages = append(ctx.Messages,
		NewUserMessage("q1"),
		NewAssistantMessage("a1"),
		NewUserMessage("q2"),
	)

	users := ctx.UserMessages()
	if len(users) != 2 {
		t.Fatalf("expected 2 user messages, got %d", len(users))
	}
	if users[0].Content != "q1" || users[1].Content != "q2" {
		t.Error("user messages out of order")
	}
}

func TestNewMessage_Defaults(t *testing.T) {
	msg := NewUserMessage("hi")
	if msg.ID == "" {
		t.Error("expected generated id")
	}
	if msg.Role != RoleUser {
		t.Errorf("expected user role, got %q", msg.Role)
	}
	if msg.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}
