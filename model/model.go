// Package model adapts external completion providers to the
// core.CompletionProvider contract and assembles the system prompts the
// pipeline sends alongside a user turn. Provider specifics (SDK message
// shapes, auth, retries) stay in the vendor subpackages.
package model

import (
	"strings"

	"github.com/hupe1980/convokit/core"
)

// Mode selects the assistant persona for prompt assembly.
type Mode string

const (
	// ModeAssistant is the general-purpose conversational persona.
	ModeAssistant Mode = "assistant"
	// ModeCoder favors concise answers with clean code.
	ModeCoder Mode = "coder"
	// ModeAnalyst favors data-driven answers.
	ModeAnalyst Mode = "analyst"
	// ModeCreative favors expressive, open-ended answers.
	ModeCreative Mode = "creative"
)

// systemPrompts are the per-mode base instructions. Unknown modes fall back
// to ModeAssistant.
var systemPrompts = map[Mode]string{
	ModeAssistant: "You are a friendly and knowledgeable AI assistant for machine-learning topics. " +
		"Talk naturally and concisely like a supportive colleague. " +
		"Only use structured output for complex technical explanations; " +
		"greet simple messages with a simple reply.",
	ModeCoder: "You are a coding assistant. " +
		"Be extremely concise and natural. " +
		"Provide clean code and direct explanations without rigid step-by-step scaffolding.",
	ModeAnalyst: "You are a data-analysis assistant. " +
		"Be data-driven but conversational. " +
		"Use tables only when complex data genuinely needs them.",
	ModeCreative: "You are a creative assistant. " +
		"Be inspiring and expressive, and talk naturally without rigid formats.",
}

// PromptOptions carry the optional sections appended to the base prompt.
type PromptOptions struct {
	// DatasetContext is the user's dataset description, if any.
	DatasetContext string
	// ConversationContext is the formatted recent-history block from the
	// context store.
	ConversationContext string
}

// SystemPrompt assembles the full system prompt for a turn: persona by mode,
// an emotional-context hint derived from the user's classified emotion, then
// the optional dataset and conversation sections.
func SystemPrompt(mode Mode, emotion core.Emotion, optFns ...func(o *PromptOptions)) string {
	opts := PromptOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	base, ok := systemPrompts[mode]
	if !ok {
		base = systemPrompts[ModeAssistant]
	}

	var sb strings.Builder
	sb.WriteString(base)

	switch emotion {
	case core.EmotionFrustrated:
		sb.WriteString("\n\nIMPORTANT: The user seems frustrated. Be extra patient and clear.")
	case core.EmotionUrgent:
		sb.WriteString("\n\nIMPORTANT: This is time-sensitive. Be direct.")
	}

	if opts.DatasetContext != "" {
		sb.WriteString("\n\nUser's Dataset Context:\n")
		sb.WriteString(opts.DatasetContext)
	}
	if opts.ConversationContext != "" {
		sb.WriteString("\n\n")
		sb.WriteString(opts.ConversationContext)
	}

	return sb.String()
}
