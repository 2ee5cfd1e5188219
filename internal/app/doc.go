// Package app wires application dependencies for the CLI.
//
// It resolves Config from flags, AIDCONNECT_* environment variables and an
// optional config.yaml, then builds the session store, API client and
// services, exposing them via the Wire struct for commands to use.
package app
