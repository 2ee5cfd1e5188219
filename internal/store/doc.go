// Package store provides file-based persistence for the aidconnect client.
//
// It plays the role browser local storage plays for the web client: a small
// key/value document on disk holding the bearer token under a fixed key and
// the last fetched profile next to it. Writes go through a temp file and an
// atomic rename. All methods are concurrency-safe via internal locking.
//
// When a passphrase is configured the document is sealed with a key derived
// by scrypt and ChaCha20-Poly1305 before it touches the disk.
package store
