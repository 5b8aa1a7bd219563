package translate

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// ScriptDetector classifies text by its dominant unicode script. It is a
// best-guess heuristic: anything written in Latin script (or too short to
// judge) comes back as English.
type ScriptDetector struct{}

// NewScriptDetector creates a ScriptDetector.
func NewScriptDetector() *ScriptDetector { return &ScriptDetector{} }

// Detect returns the language code for the dominant script of the text,
// defaulting to "en" when no non-Latin script is recognized.
func (d *ScriptDetector) Detect(text string) string {
	switch whatlanggo.DetectScript(text) {
	case unicode.Devanagari:
		return "hi"
	case unicode.Tamil:
		return "ta"
	case unicode.Telugu:
		return "te"
	case unicode.Bengali:
		return "bn"
	case unicode.Han:
		return "zh-CN"
	case unicode.Hiragana, unicode.Katakana:
		return "ja"
	case unicode.Hangul:
		return "ko"
	case unicode.Arabic:
		return "ar"
	case unicode.Cyrillic:
		return "ru"
	default:
		return "en"
	}
}
