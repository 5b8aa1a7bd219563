package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/convokit/core"
	"github.com/hupe1980/convokit/internal/testutil"
)

func TestAnalyze_EmptyHistory(t *testing.T) {
	report := Analyze("s1", nil)

	assert.Equal(t, "s1", report.SessionID)
	assert.Zero(t, report.MessageCount)
	assert.Zero(t, report.UserMessageCount)
	assert.Zero(t, report.AveragePolarity)
	assert.Empty(t, report.IntentDistribution)
	assert.Empty(t, report.EmotionDistribution)
}

func TestAnalyze_Distributions(t *testing.T) {
	history := []core.Message{
		testutil.NewMessageBuilder().User("what is a cnn?").
			Intent(core.IntentMLQuestion).
			Emotion(core.EmotionNeutral, 0).Build(),
		testutil.AssistantTurn("a convolutional network"),
		testutil.NewMessageBuilder().User("my code fails").
			Intent(core.IntentCodeDebug).
			Emotion(core.EmotionFrustrated, -0.6).Build(),
		testutil.NewMessageBuilder().User("explain again please").
			Intent(core.IntentMLQuestion).
			Emotion(core.EmotionConfused, -0.2).Build(),
	}

	report := Analyze("s1", history)

	assert.Equal(t, 4, report.MessageCount)
	assert.Equal(t, 3, report.UserMessageCount)
	assert.Equal(t, 2, report.IntentDistribution[core.IntentMLQuestion])
	assert.Equal(t, 1, report.IntentDistribution[core.IntentCodeDebug])
	assert.Equal(t, 1, report.EmotionDistribution[core.EmotionFrustrated])
	assert.Equal(t, 1, report.EmotionDistribution[core.EmotionConfused])
	assert.InDelta(t, (-0.6-0.2)/3.0, report.AveragePolarity, 1e-9)
}

func TestAnalyze_SkipsUnlabeledMessages(t *testing.T) {
	history := []core.Message{
		testutil.NewMessageBuilder().User("no labels here").Build(),
	}

	report := Analyze("s1", history)

	assert.Equal(t, 1, report.UserMessageCount)
	assert.Empty(t, report.IntentDistribution)
	assert.Empty(t, report.EmotionDistribution)
	assert.Zero(t, report.AveragePolarity)
}
