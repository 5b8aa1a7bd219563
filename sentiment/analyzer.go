package sentiment

import (
	"context"
	"strings"
	"time"

	"github.com/hupe1980/convokit/core"
	"github.com/hupe1980/convokit/lexicon"
	"github.com/hupe1980/convokit/logging"
	"github.com/hupe1980/convokit/translate"
)

// AnalyzerOptions configure an Analyzer.
type AnalyzerOptions struct {
	// Scorer supplies base polarity/subjectivity. Defaults to VaderScorer.
	Scorer core.Scorer
	// Detector classifies the input language. Defaults to the script detector.
	Detector core.LanguageDetector
	// Translator normalizes non-English input to an English proxy text used
	// only for scoring. Defaults to the Google translator.
	Translator core.Translator
	// TranslationTimeout bounds the normalization round trip. On expiry the
	// original text is scored. Defaults to 10s.
	TranslationTimeout time.Duration
	// Logger receives degradation notices. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Analyzer computes SentimentScores. It holds no per-call state and is safe
// for concurrent use; the translation round trip happens before any caller
// lock is relevant.
type Analyzer struct {
	scorer     core.Scorer
	detector   core.LanguageDetector
	translator core.Translator
	timeout    time.Duration
	logger     logging.Logger
}

// NewAnalyzer builds an Analyzer with optional overrides.
func NewAnalyzer(optFns ...func(o *AnalyzerOptions)) *Analyzer {
	opts := AnalyzerOptions{
		Scorer:             VaderScorer{},
		Detector:           translate.NewScriptDetector(),
		Translator:         translate.NewGoogleTranslator(),
		TranslationTimeout: 10 * time.Second,
		Logger:             logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Analyzer{
		scorer:     opts.Scorer,
		detector:   opts.Detector,
		translator: opts.Translator,
		timeout:    opts.TranslationTimeout,
		logger:     opts.Logger,
	}
}

// Analyze scores the text. Non-English input is translated to an English
// proxy first; the original text is never mutated and translation failures
// degrade to scoring the original. Confidence is
// clamp(0.3, 0.95, (subjectivity+0.3) × (wordCount/10)), so short objective
// utterances always report low confidence.
func (a *Analyzer) Analyze(ctx context.Context, text string) core.SentimentScore {
	analysisText := a.normalize(ctx, text)

	polarity, subjectivity := a.scorer.Score(analysisText)
	emotion := classifyEmotion(analysisText, polarity)

	wordCount := len(strings.Fields(analysisText))
	confidence := (subjectivity + 0.3) * (float64(wordCount) / 10.0)

	return core.NewSentimentScore(polarity, subjectivity, emotion, confidence)
}

// normalize returns the English proxy text used for scoring.
func (a *Analyzer) normalize(ctx context.Context, text string) string {
	lang := a.detector.Detect(text)
	if lang == "en" || a.translator == nil {
		return text
	}

	tctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	translated, err := a.translator.Translate(tctx, text, "en", lang)
	if err != nil {
		a.logger.Warn("sentiment normalization degraded to original text",
			"source_lang", lang, "duration", time.Since(start), "error", err)
		return text
	}
	a.logger.Debug("sentiment analysis text normalized", "source_lang", lang, "duration", time.Since(start))
	return translated
}

// classifyEmotion applies the phrase rules in strict priority order; the
// first match wins independent of polarity sign.
func classifyEmotion(text string, polarity float64) core.Emotion {
	lower := strings.ToLower(text)

	if containsAny(lower, lexicon.UrgencyIndicators) {
		return core.EmotionUrgent
	}
	if countContained(lower, lexicon.FrustrationIndicators) >= 2 || polarity < -0.3 {
		return core.EmotionFrustrated
	}
	if containsAny(lower, lexicon.SatisfactionIndicators) {
		return core.EmotionSatisfied
	}
	if containsAny(lower, lexicon.ConfusionIndicators) {
		return core.EmotionConfused
	}

	switch {
	case polarity > 0.3:
		return core.EmotionPositive
	case polarity < -0.1:
		return core.EmotionNegative
	default:
		return core.EmotionNeutral
	}
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

func countContained(text string, phrases []string) int {
	count := 0
	for _, p := range phrases {
		if strings.Contains(text, p) {
			count++
		}
	}
	return count
}
