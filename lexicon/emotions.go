package lexicon

// FrustrationIndicators trigger the frustrated emotion when two or more
// distinct phrases appear in one message.
var FrustrationIndicators = []string{
	"not working", "doesn't work", "broken", "frustrated", "annoying",
	"stupid", "terrible", "awful", "useless", "waste", "failed",
	"error", "wrong", "bad", "hate", "worst", "can't", "unable",
}

// SatisfactionIndicators trigger the satisfied emotion.
var SatisfactionIndicators = []string{
	"thanks", "thank you", "great", "awesome", "excellent", "perfect",
	"amazing", "wonderful", "love", "helpful", "good", "nice",
	"appreciate", "brilliant", "fantastic",
}

// UrgencyIndicators trigger the urgent emotion. Checked before every other
// rule, so urgency wins even when frustration phrases are present.
var UrgencyIndicators = []string{
	"urgent", "asap", "immediately", "quickly", "now", "emergency",
	"critical", "deadline", "hurry", "fast", "soon", "right now",
}

// ConfusionIndicators trigger the confused emotion.
var ConfusionIndicators = []string{
	"confused", "don't understand", "unclear", "what do you mean",
	"explain", "clarify", "lost", "stuck", "help", "how to",
}

// EscalationPhrases are explicit human-handoff requests. Any hit in the most
// recent user turn forces escalation regardless of sentiment history.
var EscalationPhrases = []string{
	"talk to human", "speak to person", "real person",
	"human agent", "customer service", "representative",
	"not helpful", "this isn't working",
}
