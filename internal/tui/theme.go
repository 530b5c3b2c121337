package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/folio/internal/config"
)

type Theme struct {
	Name       string
	Dark       bool
	Title      lipgloss.Style
	Heading    lipgloss.Style
	Typed      lipgloss.Style
	Body       lipgloss.Style
	Dim        lipgloss.Style
	Card       lipgloss.Style
	CardHover  lipgloss.Style
	Chip       lipgloss.Style
	Badge      lipgloss.Style
	DotOn      lipgloss.Style
	DotOff     lipgloss.Style
	Button     lipgloss.Style
	ButtonDim  lipgloss.Style
	Sidebar    lipgloss.Style
	NavItem    lipgloss.Style
	NavActive  lipgloss.Style
	Toggle     lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	Link       lipgloss.Style
	Modal      lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
}

var Themes = map[string]Theme{
	config.ThemeLight: {
		Name:       "Light",
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("93")).Bold(true),
		Typed:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Body:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("252")).Padding(0, 2),
		CardHover:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 2),
		Chip:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("254")).Padding(0, 1),
		Badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		DotOn:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		DotOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Button:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 2),
		ButtonDim:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 2),
		Sidebar:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("252")),
		NavItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		NavActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		Toggle:     lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Background(lipgloss.Color("236")).Padding(0, 1),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		InputFocus: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Modal:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("33")).Padding(1, 3),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	},
	config.ThemeDark: {
		Name:       "Dark",
		Dark:       true,
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Typed:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		Body:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 2),
		CardHover:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("75")).Padding(0, 2),
		Chip:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")).Padding(0, 1),
		Badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("239")).Padding(0, 1),
		DotOn:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		DotOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Button:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 2),
		ButtonDim:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("75")).Padding(0, 2),
		Sidebar:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("236")),
		NavItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1),
		NavActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1),
		Toggle:     lipgloss.NewStyle().Foreground(lipgloss.Color("234")).Background(lipgloss.Color("220")).Padding(0, 1),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		InputFocus: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("75")).Padding(0, 1),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Underline(true),
		Modal:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("141")).Padding(1, 3),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	},
}

// ResolveTheme returns the named theme, falling back to light.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[config.ThemeLight]
}

// toggled returns the opposite of t.
func (t Theme) toggled() Theme {
	if t.Dark {
		return Themes[config.ThemeLight]
	}
	return Themes[config.ThemeDark]
}

// toggleLabel is the sun/moon button caption: it names the theme a press switches to.
func (t Theme) toggleLabel() string {
	if t.Dark {
		return "☀ Light"
	}
	return "☾ Dark"
}
