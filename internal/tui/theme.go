package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// PanditAI palette: dark night sky with amber accents.
var (
	ColorBackground = lipgloss.Color("#08080a")
	ColorSurface    = lipgloss.Color("#161616")
	ColorBorder     = lipgloss.Color("#2a2a2a")

	ColorAccent    = lipgloss.Color("#fcd34d") // amber
	ColorAccentDim = lipgloss.Color("#92700c")

	ColorSuccess = lipgloss.Color("#30d158")
	ColorWarning = lipgloss.Color("#ffd60a")
	ColorError   = lipgloss.Color("#ff453a")

	ColorTextPrimary = lipgloss.Color("#f5f5f7")
	ColorTextMuted   = lipgloss.Color("#808080")
	ColorTextDim     = lipgloss.Color("#505050")
)

// Theme contains all styled components.
type Theme struct {
	HeaderContainer lipgloss.Style
	Logo            lipgloss.Style
	LogoDot         lipgloss.Style
	Score           lipgloss.Style

	TabContainer lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style

	FooterContainer lipgloss.Style

	Title         lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	ValueMuted    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style

	Card       lipgloss.Style
	CardActive lipgloss.Style

	Input      lipgloss.Style
	InputFocus lipgloss.Style

	ListItem       lipgloss.Style
	ListItemActive lipgloss.Style
	ListCursor     lipgloss.Style

	ChatUser      lipgloss.Style
	ChatAssistant lipgloss.Style

	Help    lipgloss.Style
	HelpKey lipgloss.Style

	Spinner lipgloss.Style
}

// DefaultTheme is the standard theme.
var DefaultTheme = &Theme{
	HeaderContainer: lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorSurface),
	Logo: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextPrimary),
	LogoDot: lipgloss.NewStyle().
		Foreground(ColorAccent),
	Score: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent),

	TabContainer: lipgloss.NewStyle().
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Underline(true),
	TabInactive: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	FooterContainer: lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorSurface),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextPrimary),
	Label: lipgloss.NewStyle().
		Foreground(ColorTextMuted),
	Value: lipgloss.NewStyle().
		Foreground(ColorTextPrimary),
	ValueMuted: lipgloss.NewStyle().
		Foreground(ColorTextDim),
	StatusSuccess: lipgloss.NewStyle().
		Foreground(ColorSuccess),
	StatusError: lipgloss.NewStyle().
		Foreground(ColorError),
	StatusWarning: lipgloss.NewStyle().
		Foreground(ColorWarning),

	Card: lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 2),
	CardActive: lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(1, 2),

	Input: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),
	InputFocus: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1),

	ListItem: lipgloss.NewStyle().
		Foreground(ColorTextPrimary),
	ListItemActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent),
	ListCursor: lipgloss.NewStyle().
		Foreground(ColorAccent),

	ChatUser: lipgloss.NewStyle().
		Foreground(ColorTextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccentDim).
		Padding(0, 1),
	ChatAssistant: lipgloss.NewStyle().
		Foreground(ColorTextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),

	Help: lipgloss.NewStyle().
		Foreground(ColorTextDim),
	HelpKey: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Spinner: lipgloss.NewStyle().
		Foreground(ColorAccent),
}
