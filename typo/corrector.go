// Package typo normalizes misspelled domain terms before analysis. Tokens
// are compared against a fixed term list with a 0-100 edit-similarity ratio;
// confident matches are rewritten, everything else passes through untouched.
package typo

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/hupe1980/convokit/lexicon"
)

// DefaultThreshold is the similarity a term must exceed to replace a token.
const DefaultThreshold = 85

// SimilarityFunc scores two strings on a 0-100 scale.
type SimilarityFunc func(a, b string) int

// Options configure a Corrector.
type Options struct {
	// Terms is the reference vocabulary. Defaults to lexicon.DomainTerms.
	Terms []string
	// Threshold a match must exceed (strictly) to apply. Defaults to DefaultThreshold.
	Threshold int
	// Similarity scores candidate pairs. Defaults to fuzzy.Ratio.
	Similarity SimilarityFunc
}

// Corrector is a pure function over its static term table; it keeps no
// mutable state and is safe for concurrent use.
type Corrector struct {
	terms      []string
	threshold  int
	similarity SimilarityFunc
}

// NewCorrector builds a Corrector with optional overrides.
func NewCorrector(optFns ...func(o *Options)) *Corrector {
	opts := Options{
		Terms:      lexicon.DomainTerms,
		Threshold:  DefaultThreshold,
		Similarity: fuzzy.Ratio,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Corrector{terms: opts.Terms, threshold: opts.Threshold, similarity: opts.Similarity}
}

// Correct tokenizes on whitespace and rewrites each token whose lower-cased,
// punctuation-stripped form is within the similarity threshold of a term and
// differs from it. Trailing punctuation moves onto the replacement. Ties
// resolve to the first term in list order.
func (c *Corrector) Correct(text string) string {
	words := strings.Fields(text)
	corrected := make([]string, len(words))
	for i, word := range words {
		corrected[i] = c.correctWord(word)
	}
	return strings.Join(corrected, " ")
}

func (c *Corrector) correctWord(word string) string {
	base, punct := splitTrailingPunct(word)
	lower := strings.ToLower(base)

	bestMatch := ""
	bestScore := 0
	for _, term := range c.terms {
		score := c.similarity(lower, term)
		if score > bestScore && score > c.threshold {
			bestScore = score
			bestMatch = term
		}
	}

	if bestScore > c.threshold && lower != bestMatch {
		return bestMatch + punct
	}
	return word
}

// splitTrailingPunct peels the trailing run of sentence punctuation off a
// token so similarity is computed on the bare word.
func splitTrailingPunct(word string) (base, punct string) {
	end := len(word)
	for end > 0 && strings.ContainsRune(".,!?", rune(word[end-1])) {
		end--
	}
	return word[:end], word[end:]
}
