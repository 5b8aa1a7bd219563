package core

import "context"

// Scorer is the base lexical sentiment oracle: polarity in [-1, 1] and
// subjectivity in [0, 1]. It is a replaceable external capability, not a
// component of the rule set built on top of it.
type Scorer interface {
	Score(text string) (polarity, subjectivity float64)
}

// LanguageDetector classifies text into a single best-guess language code by
// script heuristics, defaulting to "en" when no non-Latin script is
// recognized.
type LanguageDetector interface {
	Detect(text string) string
}

// Translator converts text between languages. Implementations must be
// idempotent when sourceLang equals targetLang and must degrade rather than
// fail: a returned error is advisory and callers fall back to the input text.
type Translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error)
}

// CompletionProvider is the external LLM collaborator: one system prompt and
// one user message in, one reply out. Transport, streaming and tool calling
// stay behind the implementation.
type CompletionProvider interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
