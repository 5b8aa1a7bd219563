package testutil

import (
	"context"
	"fmt"

	"github.com/hupe1980/convokit/core"
)

// Compile-time contract checks for the fakes.
var (
	_ core.Scorer             = (*FakeScorer)(nil)
	_ core.LanguageDetector   = (*FakeDetector)(nil)
	_ core.Translator         = (*FakeTranslator)(nil)
	_ core.CompletionProvider = (*FakeProvider)(nil)
)

// FakeScorer returns fixed polarity/subjectivity values.
type FakeScorer struct {
	Polarity     float64
	Subjectivity float64
}

// Score implements core.Scorer.
func (f *FakeScorer) Score(text string) (float64, float64) {
	return f.Polarity, f.Subjectivity
}

// FakeDetector returns a fixed language code.
type FakeDetector struct {
	Lang string
}

// Detect implements core.LanguageDetector.
func (f *FakeDetector) Detect(text string) string {
	if f.Lang == "" {
		return "en"
	}
	return f.Lang
}

// FakeTranslator records its last call and returns a canned result or error.
type FakeTranslator struct {
	Result string
	Err    error

	LastText   string
	LastTarget string
	LastSource string
	Calls      int
}

// Translate implements core.Translator.
func (f *FakeTranslator) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	f.Calls++
	f.LastText = text
	f.LastTarget = targetLang
	f.LastSource = sourceLang
	if f.Err != nil {
		return text, f.Err
	}
	if f.Result == "" {
		return text, nil
	}
	return f.Result, nil
}

// FakeProvider echoes a canned reply and records the prompts it received.
type FakeProvider struct {
	Reply string
	Err   error

	LastSystem string
	LastUser   string
	Calls      int
}

// Complete implements core.CompletionProvider.
func (f *FakeProvider) Complete(ctx context.Context, system, user string) (string, error) {
	f.Calls++
	f.LastSystem = system
	f.LastUser = user
	if f.Err != nil {
		return "", f.Err
	}
	if f.Reply == "" {
		return fmt.Sprintf("echo: %s", user), nil
	}
	return f.Reply, nil
}
