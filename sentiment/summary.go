package sentiment

import "github.com/hupe1980/convokit/core"

// Trend labels the direction of a conversation's sentiment.
type Trend string

const (
	// TrendImproving means the second half of the conversation scored
	// noticeably higher than the first.
	TrendImproving Trend = "improving"
	// TrendDeclining means the second half scored noticeably lower.
	TrendDeclining Trend = "declining"
	// TrendStable means the halves scored within the comparison band.
	TrendStable Trend = "stable"
	// TrendNeutral means there was not enough history to compare.
	TrendNeutral Trend = "neutral"
)

// trendBand is the polarity delta the halves must differ by to count as a
// direction change.
const trendBand = 0.1

// HistorySummary condenses the sentiment of a conversation's user turns.
type HistorySummary struct {
	AveragePolarity float64      `json:"average_polarity"`
	Trend           Trend        `json:"trend"`
	UserMessages    int          `json:"user_messages"`
	LastEmotion     core.Emotion `json:"last_emotion"`
}

// Summarize reports average polarity, the first-half/second-half trend and
// the most recent user emotion. Messages without a recorded sentiment
// contribute zero polarity.
func Summarize(history []core.Message) HistorySummary {
	var userMessages []core.Message
	for _, m := range history {
		if m.Role == core.RoleUser {
			userMessages = append(userMessages, m)
		}
	}
	if len(userMessages) == 0 {
		return HistorySummary{Trend: TrendNeutral, LastEmotion: core.EmotionNeutral}
	}

	polarities := make([]float64, len(userMessages))
	total := 0.0
	for i, m := range userMessages {
		if m.Sentiment != nil {
			polarities[i] = m.Sentiment.Polarity
		}
		total += polarities[i]
	}

	summary := HistorySummary{
		AveragePolarity: total / float64(len(polarities)),
		Trend:           TrendNeutral,
		UserMessages:    len(userMessages),
		LastEmotion:     core.EmotionNeutral,
	}
	if last := userMessages[len(userMessages)-1]; last.Sentiment != nil {
		summary.LastEmotion = last.Sentiment.Emotion
	}

	mid := len(polarities) / 2
	if mid > 0 {
		firstHalf := mean(polarities[:mid])
		secondHalf := mean(polarities[mid:])
		switch {
		case secondHalf > firstHalf+trendBand:
			summary.Trend = TrendImproving
		case secondHalf < firstHalf-trendBand:
			summary.Trend = TrendDeclining
		default:
			summary.Trend = TrendStable
		}
	}

	return summary
}

func mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
