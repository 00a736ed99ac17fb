package main

import "github.com/charmbracelet/lipgloss"

// Terminal presentation lives entirely in this layer; the core never prints.
var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	menuStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)
