// Package analytics derives aggregate views from Message records for
// consumers outside the pipeline (dashboards, conversation listings). It
// only reads the fields every Message is guaranteed to carry; durable
// long-term storage of the records stays with the caller.
package analytics

import "github.com/hupe1980/convokit/core"

// Report aggregates the classification labels of a conversation's user turns.
type Report struct {
	SessionID           string                  `json:"session_id"`
	MessageCount        int                     `json:"message_count"`
	UserMessageCount    int                     `json:"user_message_count"`
	AveragePolarity     float64                 `json:"average_polarity"`
	IntentDistribution  map[core.IntentName]int `json:"intent_distribution"`
	EmotionDistribution map[core.Emotion]int    `json:"emotion_distribution"`
}

// Analyze builds a Report from a conversation history. Messages without a
// recorded intent or sentiment simply do not contribute to the respective
// distribution.
func Analyze(sessionID string, history []core.Message) Report {
	report := Report{
		SessionID:           sessionID,
		MessageCount:        len(history),
		IntentDistribution:  map[core.IntentName]int{},
		EmotionDistribution: map[core.Emotion]int{},
	}

	totalPolarity := 0.0
	scored := 0
	for _, msg := range history {
		if msg.Role != core.RoleUser {
			continue
		}
		report.UserMessageCount++
		if msg.Intent != "" {
			report.IntentDistribution[msg.Intent]++
		}
		if msg.Sentiment != nil {
			report.EmotionDistribution[msg.Sentiment.Emotion]++
			totalPolarity += msg.Sentiment.Polarity
			scored++
		}
	}
	if scored > 0 {
		report.AveragePolarity = totalPolarity / float64(scored)
	}
	return report
}
