package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
)

// MessageType selects the symbol and color of a notification.
type MessageType int

const (
	ErrorType MessageType = iota
	WarningType
	SuccessType
	InfoType
	HintType
	TitleType
)

type messageConfig struct {
	symbol string
	color  *fcolor.Color
}

func configFor(t MessageType) messageConfig {
	switch t {
	case ErrorType:
		return messageConfig{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	case WarningType:
		return messageConfig{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case SuccessType:
		return messageConfig{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	case InfoType:
		return messageConfig{symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)}
	case HintType:
		return messageConfig{symbol: "  ", color: fcolor.New(fcolor.Faint)}
	case TitleType:
		return messageConfig{color: fcolor.New(fcolor.Bold)}
	default:
		return messageConfig{color: fcolor.New(fcolor.Reset)}
	}
}

// Write prints one notification. A nil writer means stdout.
func Write(w io.Writer, t MessageType, format string, args ...any) {
	if w == nil {
		w = os.Stdout
	}
	content := format
	if len(args) > 0 {
		content = fmt.Sprintf(format, args...)
	}
	cfg := configFor(t)
	if cfg.symbol != "" && strings.Contains(content, "\n") {
		content = strings.ReplaceAll(content, "\n", "\n"+strings.Repeat(" ", len([]rune(cfg.symbol))))
	}
	if _, err := cfg.color.Fprintf(w, "%s%s\n", cfg.symbol, content); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ui: failed to print message: %v\n", err)
	}
}

// Errorf writes an error message.
func Errorf(w io.Writer, format string, args ...any) { Write(w, ErrorType, format, args...) }

// Warnf writes a warning message.
func Warnf(w io.Writer, format string, args ...any) { Write(w, WarningType, format, args...) }

// Successf writes a success message.
func Successf(w io.Writer, format string, args ...any) { Write(w, SuccessType, format, args...) }

// Infof writes an informational message.
func Infof(w io.Writer, format string, args ...any) { Write(w, InfoType, format, args...) }

// Hintf writes a dimmed, indented hint.
func Hintf(w io.Writer, format string, args ...any) { Write(w, HintType, format, args...) }

// Titlef writes a bold heading.
func Titlef(w io.Writer, format string, args ...any) { Write(w, TitleType, format, args...) }
