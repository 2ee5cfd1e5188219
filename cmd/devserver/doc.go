// Command devserver runs an in-memory Aid-Connect backend for local use.
//
// It serves the same /api routes the CLI talks to, keeps everything in
// memory, and is configured through ADDR, JWT_SECRET and TOKEN_TTL, read
// from the environment or an optional .env file.
package main
