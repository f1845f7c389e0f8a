package main

import "github.com/charmbracelet/lipgloss"

// Styles adapted from the reference poker TUI's card/player/table boxes,
// retargeted at Coup's roles and influence cards instead of hole cards.
var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).MarginLeft(2)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	roleCardStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("255")).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1).
			Margin(0, 1).
			Border(lipgloss.RoundedBorder())

	revealedCardStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("255")).
				Foreground(lipgloss.Color("241")).
				Padding(0, 1).
				Margin(0, 1).
				Border(lipgloss.RoundedBorder())

	playerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Margin(0, 1)

	currentPlayerStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("46")).
				Padding(1, 2).
				Margin(0, 1).
				Background(lipgloss.Color("22"))

	knockedOutStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("241")).
				Foreground(lipgloss.Color("241")).
				Padding(1, 2).
				Margin(0, 1)

	actionButtonStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("17")).
				Foreground(lipgloss.Color("39")).
				Padding(0, 2).
				Margin(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39"))

	selectedActionStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("39")).
				Foreground(lipgloss.Color("0")).
				Padding(0, 2).
				Margin(0, 1).
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("46")).
				Bold(true)

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(2).
			Margin(1).
			Background(lipgloss.Color("22"))
)
