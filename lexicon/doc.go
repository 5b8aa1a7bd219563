// Package lexicon holds the static keyword and phrase tables the pipeline
// matches against: intent keyword lists, the entity vocabulary, emotion
// indicator phrases, explicit escalation phrases and the domain terms used
// for typo correction. Pure data, no behavior.
//
// Matching everywhere is case-insensitive substring containment over
// lower-cased input, so multi-word phrases match as written here and short
// keywords can match inside larger words.
package lexicon
