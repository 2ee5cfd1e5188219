// Package session is the shared authentication context of the client.
//
// It logs in and registers against the backend, keeps the bearer token and
// the profile fetched with it, and persists both through a domain.SessionStore
// so later runs can restore them.
package session
