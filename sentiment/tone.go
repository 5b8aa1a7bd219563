package sentiment

import (
	"unicode/utf8"

	"github.com/hupe1980/convokit/core"
)

// tonePrefixes frame the reply for the user's emotional state. Positive and
// neutral replies pass through without framing.
var tonePrefixes = map[core.Emotion]string{
	core.EmotionFrustrated: "I understand this can be frustrating. Let me help you sort this out.\n\n",
	core.EmotionConfused:   "No worries, let me break this down clearly for you.\n\n",
	core.EmotionUrgent:     "I see this is time-sensitive. Here's a quick solution:\n\n",
	core.EmotionSatisfied:  "Glad I could help! ",
	core.EmotionPositive:   "",
	core.EmotionNegative:   "I'm here to help. ",
	core.EmotionNeutral:    "",
}

// supportiveSuffix is appended to substantial replies when the user's
// emotion calls for extra reassurance.
const supportiveSuffix = "\n\n💡 Feel free to ask if you need more clarification!"

// suffixMinRunes is the reply length (in runes) above which the supportive
// suffix applies.
const suffixMinRunes = 100

// AdjustTone rewrites the outbound reply with emotion-appropriate framing.
// Pure and total: it always returns a result and never fails.
func AdjustTone(response string, score core.SentimentScore) string {
	prefix := tonePrefixes[score.Emotion]

	switch score.Emotion {
	case core.EmotionFrustrated, core.EmotionConfused, core.EmotionNegative:
		if utf8.RuneCountInString(response) > suffixMinRunes {
			return prefix + response + supportiveSuffix
		}
	}
	return prefix + response
}

// emotionEmoji maps each emotion to its display glyph.
var emotionEmoji = map[core.Emotion]string{
	core.EmotionFrustrated: "😤",
	core.EmotionSatisfied:  "😊",
	core.EmotionPositive:   "🙂",
	core.EmotionNegative:   "😟",
	core.EmotionNeutral:    "😐",
	core.EmotionUrgent:     "⚡",
	core.EmotionConfused:   "🤔",
	core.EmotionAngry:      "😠",
}

// Emoji returns the glyph for an emotion, defaulting to neutral.
func Emoji(e core.Emotion) string {
	if glyph, ok := emotionEmoji[e]; ok {
		return glyph
	}
	return emotionEmoji[core.EmotionNeutral]
}
