// Package main provides UI utilities for the Brain CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// UI provides user-friendly output utilities.
type UI struct {
	jsonMode bool
}

// NewUI creates a new UI instance.
func NewUI(jsonMode bool) *UI {
	return &UI{jsonMode: jsonMode}
}

// Success prints a success message.
func (ui *UI) Success(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgGreen).Printf("✓ %s\n", fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (ui *UI) Error(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (ui *UI) Warning(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgYellow).Printf("⚠ %s\n", fmt.Sprintf(format, args...))
}

// Heading prints a bold section heading.
func (ui *UI) Heading(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	color.New(color.Bold).Printf("%s\n", fmt.Sprintf(format, args...))
}

// JSON marshals v to stdout with indentation.
func (ui *UI) JSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
