// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only.
//
// The wire types mirror the Aid-Connect REST backend. They are pass-through
// records owned by the server; the client never derives invariants beyond
// form validation.
package domain
