// Package nlu implements intent classification and entity extraction over
// the static lexicon tables. Intents are scored by keyword containment (no
// tokenization, no learned model); entities are substring hits against a
// fixed vocabulary. Every operation is a total function: unmatched input
// degrades to the default intent, never to an error.
package nlu
