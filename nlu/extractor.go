package nlu

import (
	"strings"

	"github.com/hupe1980/convokit/core"
	"github.com/hupe1980/convokit/lexicon"
)

// Options configure an Extractor.
type Options struct {
	// Patterns is the ordered intent keyword table. Defaults to lexicon.IntentPatterns.
	Patterns []lexicon.IntentPattern
	// Concepts is the ml_concept vocabulary. Defaults to lexicon.MLConcepts.
	Concepts []string
	// Languages is the programming-language vocabulary. Defaults to
	// lexicon.ProgrammingLanguages.
	Languages []string
}

// Extractor scores intents and extracts entities. It is stateless and safe
// for concurrent use.
type Extractor struct {
	patterns  []lexicon.IntentPattern
	concepts  []string
	languages []string
}

// NewExtractor builds an Extractor with optional overrides.
func NewExtractor(optFns ...func(o *Options)) *Extractor {
	opts := Options{
		Patterns:  lexicon.IntentPatterns,
		Concepts:  lexicon.MLConcepts,
		Languages: lexicon.ProgrammingLanguages,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Extractor{patterns: opts.Patterns, concepts: opts.Concepts, languages: opts.Languages}
}

// ExtractIntent classifies the text. Each category scores the fraction of
// its keywords found as substrings of the lower-cased text; the first
// highest-scoring category wins and its confidence is boosted by 0.1 per
// matching keyword (capped at 1.0). When nothing matches anywhere the
// default category is reported with the fixed fallback confidence. Entities
// are attached regardless of the intent outcome.
func (e *Extractor) ExtractIntent(text string) core.Intent {
	lower := strings.ToLower(text)

	bestName := core.DefaultIntent
	bestScore := 0.0
	bestMatches := 0
	for _, p := range e.patterns {
		matches := 0
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		score := float64(matches) / float64(len(p.Keywords))
		if score > bestScore {
			bestScore = score
			bestName = p.Name
			bestMatches = matches
		}
	}

	confidence := core.DefaultIntentConfidence
	if bestScore > 0 {
		confidence = bestScore + float64(bestMatches)*0.1
		if confidence > 1.0 {
			confidence = 1.0
		}
	} else {
		bestName = core.DefaultIntent
	}

	return core.Intent{
		Name:       bestName,
		Confidence: confidence,
		Entities:   e.ExtractEntities(text),
	}
}

// ExtractEntities finds vocabulary hits in the text. Concept hits carry the
// byte span of their first occurrence; programming-language hits carry a
// zero-width placeholder span because containment alone is checked for that
// class. Duplicates are not removed.
func (e *Extractor) ExtractEntities(text string) []core.Entity {
	lower := strings.ToLower(text)
	entities := []core.Entity{}

	for _, concept := range e.concepts {
		if pos := strings.Index(lower, concept); pos >= 0 {
			entities = append(entities, core.Entity{
				Type:  core.EntityMLConcept,
				Value: concept,
				Start: pos,
				End:   pos + len(concept),
			})
		}
	}

	for _, lang := range e.languages {
		if strings.Contains(lower, lang) {
			entities = append(entities, core.Entity{
				Type:  core.EntityProgrammingLanguage,
				Value: lang,
			})
		}
	}

	return entities
}
