package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Icon constants
const (
	DealerIcon = "🃏"
	TakerIcon  = "👑"
)

// Lipgloss Styles
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Bold(true)
	BlackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	TrumpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	FaintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
