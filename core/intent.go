package core

import "fmt"

// IntentName is the closed set of intent categories the extractor can
// produce. Using a dedicated type (rather than free strings) turns an unknown
// category into a construction-time error instead of a silent fallback.
type IntentName string

const (
	// IntentMLQuestion covers conceptual machine-learning questions.
	IntentMLQuestion IntentName = "ml_question"
	// IntentCodeDebug covers error reports and debugging requests.
	IntentCodeDebug IntentName = "code_debug"
	// IntentCodeGeneration covers requests to write or generate code.
	IntentCodeGeneration IntentName = "code_generation"
	// IntentExplanation covers requests to explain or clarify something.
	IntentExplanation IntentName = "explanation"
	// IntentDatasetHelp covers data preparation and dataset questions.
	IntentDatasetHelp IntentName = "dataset_help"
	// IntentGeneralChat is small talk and the fallback when nothing matches.
	IntentGeneralChat IntentName = "general_chat"
)

// DefaultIntent is the category reported when no keyword matches at all.
const DefaultIntent = IntentGeneralChat

// DefaultIntentConfidence is the confidence attached to DefaultIntent when
// no category scored above zero.
const DefaultIntentConfidence = 0.3

// IntentNames lists every valid intent in declaration order. Order matters:
// score ties between categories resolve to the earliest entry.
var IntentNames = []IntentName{
	IntentMLQuestion,
	IntentCodeDebug,
	IntentCodeGeneration,
	IntentExplanation,
	IntentDatasetHelp,
	IntentGeneralChat,
}

// Valid reports whether the intent name is a member of the closed set.
func (n IntentName) Valid() bool {
	for _, known := range IntentNames {
		if n == known {
			return true
		}
	}
	return false
}

// ParseIntentName converts a raw string into an IntentName, rejecting
// unknown values.
func ParseIntentName(s string) (IntentName, error) {
	n := IntentName(s)
	if !n.Valid() {
		return "", fmt.Errorf("unknown intent name %q", s)
	}
	return n, nil
}

// EntityType classifies an extracted entity.
type EntityType string

const (
	// EntityMLConcept is a machine-learning concept or library mention.
	EntityMLConcept EntityType = "ml_concept"
	// EntityProgrammingLanguage is a programming language mention. Spans for
	// this class are zero-width placeholders; position is not meaningful.
	EntityProgrammingLanguage EntityType = "programming_language"
)

// Entity is a recognized domain term with its location in the analyzed text.
// Start and End are byte offsets into the lower-cased analysis text
// (half-open, [Start, End)). Duplicate entities are allowed.
type Entity struct {
	Type  EntityType `json:"type"`
	Value string     `json:"value"`
	Start int        `json:"start"`
	End   int        `json:"end"`
}

// Intent is the classification result for one user turn. It is immutable
// after creation and only survives the turn as a label on a Message.
type Intent struct {
	Name       IntentName `json:"name"`
	Confidence float64    `json:"confidence"`
	Entities   []Entity   `json:"entities"`
}
