// Package cli provides the command-line interface for xapian.
package cli

import "github.com/charmbracelet/lipgloss"

// Styles for human-readable lock status output.
//
//nolint:gochecknoglobals // Pre-built styles for reuse
var (
	// styleFree renders a free/acquired lock state.
	styleFree = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	// styleHeld renders a contended lock state.
	styleHeld = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	// styleError renders failures.
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// styleDim renders secondary detail such as paths and hints.
	styleDim = lipgloss.NewStyle().Faint(true)
)
