// Package testutil contains helper builders and fakes used across tests to
// reduce boilerplate when constructing core model objects (messages,
// conversation contexts) and stubbing external collaborators (scorers,
// translators, completion providers). These helpers are intentionally
// minimal. They are not intended for production usage.
package testutil
