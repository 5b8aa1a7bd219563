package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/convokit/core"
	"github.com/hupe1980/convokit/lexicon"
)

func TestExtractIntent_Classification(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want core.IntentName
	}{
		{"debug request", "I have an error in my code, please fix this bug", core.IntentCodeDebug},
		{"generation request", "write a script to generate embeddings", core.IntentCodeGeneration},
		{"dataset help", "my dataset has missing values after preprocessing", core.IntentDatasetHelp},
		{"greeting", "hello there", core.IntentGeneralChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := e.ExtractIntent(tt.text)
			assert.Equal(t, tt.want, intent.Name)
			assert.Greater(t, intent.Confidence, 0.0)
		})
	}
}

func TestExtractIntent_EmptyInputFallsBack(t *testing.T) {
	e := NewExtractor()

	intent := e.ExtractIntent("")
	assert.Equal(t, core.DefaultIntent, intent.Name)
	assert.Equal(t, core.DefaultIntentConfidence, intent.Confidence)
	require.NotNil(t, intent.Entities)
	assert.Empty(t, intent.Entities)
}

func TestExtractIntent_NoMatchFallsBack(t *testing.T) {
	e := NewExtractor()

	intent := e.ExtractIntent("the quick brown fox jumps over a lazy dog")
	assert.Equal(t, core.DefaultIntent, intent.Name)
	assert.Equal(t, core.DefaultIntentConfidence, intent.Confidence)
}

func TestExtractIntent_ConfidenceBoost(t *testing.T) {
	tests := []struct {
		keywords []string
		text     string
		want     float64
	}{
		// 2 of 4 keywords match: 0.5 base + 2*0.1 boost.
		{[]string{"alpha", "beta", "gamma", "delta"}, "alpha and beta", 0.7},
		// All keywords match and the boost caps at 1.0.
		{[]string{"alpha", "beta"}, "alpha beta alpha", 1.0},
	}

	for _, tt := range tests {
		e := NewExtractor(func(o *Options) {
			o.Patterns = []lexicon.IntentPattern{
				{Name: core.IntentMLQuestion, Keywords: tt.keywords},
			}
		})
		intent := e.ExtractIntent(tt.text)
		assert.Equal(t, core.IntentMLQuestion, intent.Name)
		assert.InDelta(t, tt.want, intent.Confidence, 1e-9)
	}
}

func TestExtractIntent_TieResolvesToFirstCategory(t *testing.T) {
	e := NewExtractor(func(o *Options) {
		o.Patterns = []lexicon.IntentPattern{
			{Name: core.IntentExplanation, Keywords: []string{"walk me through", "spell out"}},
			{Name: core.IntentMLQuestion, Keywords: []string{"walk me through", "step by step"}},
		}
	})

	// Both categories score 1 of 2 keywords; the first declared wins.
	intent := e.ExtractIntent("walk me through backprop")
	assert.Equal(t, core.IntentExplanation, intent.Name)
}

func TestExtractEntities_ConceptSpans(t *testing.T) {
	e := NewExtractor()

	entities := e.ExtractEntities("i like pandas a lot")
	require.Len(t, entities, 1)
	assert.Equal(t, core.EntityMLConcept, entities[0].Type)
	assert.Equal(t, "pandas", entities[0].Value)
	assert.Equal(t, 7, entities[0].Start)
	assert.Equal(t, 7+len("pandas"), entities[0].End)
}

func TestExtractEntities_LanguagesAreZeroWidth(t *testing.T) {
	e := NewExtractor()

	entities := e.ExtractEntities("debug my Python script")
	var langs []core.Entity
	for _, ent := range entities {
		if ent.Type == core.EntityProgrammingLanguage {
			langs = append(langs, ent)
		}
	}
	require.NotEmpty(t, langs)
	assert.Equal(t, "python", langs[0].Value)
	assert.Equal(t, 0, langs[0].Start)
	assert.Equal(t, 0, langs[0].End)
}

func TestExtractEntities_NoHits(t *testing.T) {
	e := NewExtractor()

	entities := e.ExtractEntities("nothing of note")
	require.NotNil(t, entities)
	assert.Empty(t, entities)
}
