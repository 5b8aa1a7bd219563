package sentiment

import (
	"strings"

	"github.com/hupe1980/convokit/core"
	"github.com/hupe1980/convokit/lexicon"
)

// DetectorOptions configure an escalation Detector.
type DetectorOptions struct {
	// Phrases are the explicit human-handoff requests. Defaults to
	// lexicon.EscalationPhrases.
	Phrases []string
	// Window is how many trailing messages are inspected. Defaults to 5.
	Window int
	// Streak is the count of consecutive negative user turns that triggers
	// escalation. Defaults to 3.
	Streak int
}

// Detector decides whether a conversation warrants a human handoff.
type Detector struct {
	phrases []string
	window  int
	streak  int
}

// NewDetector builds a Detector with optional overrides.
func NewDetector(optFns ...func(o *DetectorOptions)) *Detector {
	opts := DetectorOptions{
		Phrases: lexicon.EscalationPhrases,
		Window:  5,
		Streak:  3,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Detector{phrases: opts.Phrases, window: opts.Window, streak: opts.Streak}
}

// ShouldEscalate inspects the trailing window of the history. It reports
// true when the streak of consecutive user turns with a negative recorded
// emotion reaches the threshold (assistant turns are skipped without
// breaking the streak; a user turn with a non-negative emotion breaks it),
// or when the most recent user turn contains an explicit handoff phrase.
// Histories shorter than two turns never escalate.
func (d *Detector) ShouldEscalate(history []core.Message) bool {
	if len(history) < 2 {
		return false
	}

	recent := history
	if len(recent) > d.window {
		recent = recent[len(recent)-d.window:]
	}

	consecutive := 0
	for i := len(recent) - 1; i >= 0; i-- {
		msg := recent[i]
		if msg.Role != core.RoleUser {
			continue
		}
		if msg.Sentiment != nil && msg.Sentiment.Emotion.Negative() {
			consecutive++
			continue
		}
		break
	}
	if consecutive >= d.streak {
		return true
	}

	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].Role != core.RoleUser {
			continue
		}
		lower := strings.ToLower(recent[i].Content)
		for _, phrase := range d.phrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
		break
	}

	return false
}
