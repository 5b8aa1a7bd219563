// Package core defines the domain contracts of the convokit pipeline: the
// analysis result types (Intent, Entity, SentimentScore), the conversational
// record types (Message, ConversationContext) and the collaborator interfaces
// the pipeline consumes (Scorer, Translator, LanguageDetector,
// CompletionProvider, ContextStore).
//
// Contracts live here, implementations live in the sibling packages (nlu,
// sentiment, translate, session, model). Depend on the interfaces in your
// code and select implementations at wiring time; this keeps higher level
// packages free of storage or provider specifics and avoids dependency
// cycles.
package core
