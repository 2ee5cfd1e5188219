// Package ui writes user-facing terminal output: colored one-line
// notifications and the cards used by listings and the dashboard.
package ui
