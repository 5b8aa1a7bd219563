package core

import "fmt"

// Emotion is the closed set of discrete emotions the classifier can produce.
// EmotionAngry is never emitted by the rule set but is a valid recorded value
// (the escalation detector treats it as negative).
type Emotion string

const (
	// EmotionUrgent marks time-sensitive messages. Highest rule priority.
	EmotionUrgent Emotion = "urgent"
	// EmotionFrustrated marks repeated frustration phrases or strongly negative polarity.
	EmotionFrustrated Emotion = "frustrated"
	// EmotionSatisfied marks explicit satisfaction phrases.
	EmotionSatisfied Emotion = "satisfied"
	// EmotionConfused marks confusion phrases.
	EmotionConfused Emotion = "confused"
	// EmotionPositive marks polarity above 0.3 with no phrase rule hit.
	EmotionPositive Emotion = "positive"
	// EmotionNegative marks polarity below -0.1 with no phrase rule hit.
	EmotionNegative Emotion = "negative"
	// EmotionNeutral is the fallback emotion.
	EmotionNeutral Emotion = "neutral"
	// EmotionAngry is an externally recordable emotion counted as negative.
	EmotionAngry Emotion = "angry"
)

// Emotions lists every valid emotion.
var Emotions = []Emotion{
	EmotionUrgent,
	EmotionFrustrated,
	EmotionSatisfied,
	EmotionConfused,
	EmotionPositive,
	EmotionNegative,
	EmotionNeutral,
	EmotionAngry,
}

// Valid reports whether the emotion is a member of the closed set.
func (e Emotion) Valid() bool {
	for _, known := range Emotions {
		if e == known {
			return true
		}
	}
	return false
}

// Negative reports whether the emotion counts toward an escalation streak.
func (e Emotion) Negative() bool {
	return e == EmotionFrustrated || e == EmotionAngry || e == EmotionNegative
}

// ParseEmotion converts a raw string into an Emotion, rejecting unknown values.
func ParseEmotion(s string) (Emotion, error) {
	e := Emotion(s)
	if !e.Valid() {
		return "", fmt.Errorf("unknown emotion %q", s)
	}
	return e, nil
}

// Confidence bounds for SentimentScore. Every score carries a confidence in
// [MinConfidence, MaxConfidence] by construction.
const (
	MinConfidence = 0.3
	MaxConfidence = 0.95
)

// SentimentScore is the result of analyzing one piece of text.
//
//   - Polarity: signed sentiment strength in [-1, 1]
//   - Subjectivity: how opinion-laden the text is, in [0, 1]
//   - Emotion: discrete classification from the prioritized rule set
//   - Confidence: in [MinConfidence, MaxConfidence], driven by text length
//     and subjectivity, independent of the emotion category
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Emotion      Emotion `json:"emotion"`
	Confidence   float64 `json:"confidence"`
}

// NewSentimentScore builds a SentimentScore clamping every numeric field into
// its documented range.
func NewSentimentScore(polarity, subjectivity float64, emotion Emotion, confidence float64) SentimentScore {
	return SentimentScore{
		Polarity:     clamp(polarity, -1, 1),
		Subjectivity: clamp(subjectivity, 0, 1),
		Emotion:      emotion,
		Confidence:   clamp(confidence, MinConfidence, MaxConfidence),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Label reduces the score to the subset persisted on a Message.
func (s SentimentScore) Label() *SentimentLabel {
	return &SentimentLabel{Polarity: s.Polarity, Emotion: s.Emotion, Confidence: s.Confidence}
}
