// Package ui holds the lipgloss styles shared by the CLI commands.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#6B7280") // Gray
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorMuted     = lipgloss.Color("#9CA3AF") // Light gray
)

var (
	// ID renders record identifiers.
	ID = lipgloss.NewStyle().Foreground(ColorSecondary)

	// Title renders vehicle and part names.
	Title = lipgloss.NewStyle().Bold(true)

	// Muted renders secondary information like hints and empty-state text.
	Muted = lipgloss.NewStyle().Foreground(ColorMuted)

	// Manufacturer renders the manufacturer column.
	Manufacturer = lipgloss.NewStyle().Foreground(ColorPrimary)

	// Year renders the model year column.
	Year = lipgloss.NewStyle().Foreground(ColorWarning)

	// Price renders part prices.
	Price = lipgloss.NewStyle().Foreground(ColorSuccess)
)
