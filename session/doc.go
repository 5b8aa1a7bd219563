// Package session houses the concrete core.ContextStore implementation. The
// interface itself (and the ConversationContext struct) live in the core
// package to centralize domain contracts; keeping only the implementation
// here prevents higher level packages from depending on storage specifics.
//
// FileStore keeps every session in memory and mirrors the whole store to a
// single JSON file: read wholesale at construction, rewritten wholesale
// after every mutating operation. The in-memory state stays authoritative
// when a write fails; the next successful write reconciles. Updates for one
// session id are serialized by a per-session mutex so concurrent turns
// cannot interleave the append-and-truncate sequence.
package session
