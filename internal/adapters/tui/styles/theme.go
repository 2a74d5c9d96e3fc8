package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Info      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Club type colors
	TypeSocial       = lipgloss.Color("#EC4899") // Pink
	TypeSports       = lipgloss.Color("#F97316") // Orange
	TypeProfessional = lipgloss.Color("#6366F1") // Indigo
	TypeHobby        = lipgloss.Color("#8B5CF6") // Violet

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Card stack
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	CardEdge = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, true, true, true).
			BorderForeground(Muted).
			Foreground(Muted).
			Padding(0, 1)

	CardName = lipgloss.NewStyle().
			Bold(true).
			Foreground(White)

	CardStampLike = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	CardStampNope = lipgloss.NewStyle().
			Bold(true).
			Foreground(Error).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Error).
			Padding(0, 1)

	// Change highlights
	Inserted = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Moved    = lipgloss.NewStyle().Foreground(Info).Bold(true)
	Updated  = lipgloss.NewStyle().Foreground(Warning).Bold(true)

	// Drawer
	MenuItem = lipgloss.NewStyle().
			PaddingLeft(2)

	MenuSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			PaddingLeft(2).
			PaddingRight(2)

	Drawer = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, true, false, false).
		BorderForeground(Primary).
		Padding(1, 2)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// TypeColor returns the color for a club type. Types like "Sports, Competitive"
// take the color of their first tag.
func TypeColor(spotType string) lipgloss.Color {
	first, _, _ := strings.Cut(spotType, ",")
	switch strings.ToLower(strings.TrimSpace(first)) {
	case "social":
		return TypeSocial
	case "sports":
		return TypeSports
	case "professional":
		return TypeProfessional
	case "hobby":
		return TypeHobby
	default:
		return Primary
	}
}

// TypeBadge renders a club type in its color
func TypeBadge(spotType string) string {
	return lipgloss.NewStyle().Foreground(TypeColor(spotType)).Italic(true).Render(spotType)
}
