package app

import "github.com/charmbracelet/lipgloss"

var (
	noteBorderStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("179"))
	noteFocusedBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("220"))
	noteFlashStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236"))
	toolbarStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("179")).Bold(true)
	toolbarFocusedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	noteBodyFlashStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236"))
	statusStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle              = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	previewBorderStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	previewTitleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
)
