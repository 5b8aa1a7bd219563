// Package logging provides a minimal logging interface and adapters for convokit.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the pipeline and stores use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - ConvoKitLogger with contextual helpers (component, session) and domain
//     helpers for turns, translation and persistence
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	store, _ := session.NewFileStore("data/contexts.json", func(o *session.Options) { o.Logger = logger })
//
// The interface is intentionally minimal so callers can plug any structured
// logger without vendor lock-in.
package logging
