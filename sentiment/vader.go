package sentiment

import (
	vaderlexicon "github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// VaderScorer is the default lexical sentiment oracle, backed by the VADER
// lexicon. Polarity is the compound score; subjectivity is approximated as
// the non-neutral share of the text, which lands in [0, 1] like the
// contract requires.
type VaderScorer struct{}

// Score rates the text. Both return values are already within their
// documented ranges.
func (VaderScorer) Score(text string) (polarity, subjectivity float64) {
	parsed := sentitext.Parse(text, vaderlexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)
	return score.Compound, 1 - score.Neutral
}
