package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/folio/internal/config"
	"github.com/akyairhashvil/folio/internal/scroll"
	"github.com/akyairhashvil/folio/internal/util"
)

// Sidebar rows: logo, spacer, one row per section, spacer, theme toggle.
const (
	sidebarNavRow = 2
	compactWidth  = 6
)

var sectionIcons = map[scroll.SectionID]string{
	scroll.Home:     "⌂",
	scroll.CV:       "▤",
	scroll.Projects: "◫",
	scroll.Contact:  "✉",
}

func sidebarToggleRow() int {
	return sidebarNavRow + len(scroll.Sections) + 1
}

// sidebarWidth is the rail width including its right border.
func sidebarWidth(termWidth int) int {
	if termWidth < config.CompactModeThreshold {
		return compactWidth
	}
	return config.SidebarWidth
}

// sidebarHit maps a sidebar row to a section or the theme toggle.
func sidebarHit(y int) (id scroll.SectionID, toggle, ok bool) {
	if y == sidebarToggleRow() {
		return "", true, true
	}
	i := y - sidebarNavRow
	if i >= 0 && i < len(scroll.Sections) {
		return scroll.Sections[i], false, true
	}
	return "", false, false
}

func (m Model) renderSidebar() string {
	t := m.theme
	w := sidebarWidth(m.width) - 1
	compact := w < config.SidebarWidth-1
	active := m.session.tracker.Active()

	rows := []string{t.Title.Render(util.Truncate(config.AppName, w)), ""}
	for i, id := range scroll.Sections {
		label := fmt.Sprintf("%d %s", i+1, sectionIcons[id])
		if !compact {
			label += " " + id.Label()
		}
		style := t.NavItem
		if id == active {
			style = t.NavActive
		}
		rows = append(rows, style.Width(w).Render(util.Truncate(label, w-2)))
	}
	rows = append(rows, "")
	toggle := t.toggleLabel()
	if compact {
		toggle = string([]rune(toggle)[:1])
	}
	rows = append(rows, t.Toggle.Render(toggle))

	height := m.viewport.Height
	for len(rows) < height {
		rows = append(rows, "")
	}
	return t.Sidebar.Width(w).Height(height).Render(strings.Join(rows[:max(height, 1)], "\n"))
}

// tooltip is the label shown for the hovered sidebar row.
func (m Model) tooltip() string {
	if m.hoverNav == "" {
		return ""
	}
	if m.hoverNav == navToggle {
		return "Switch to " + m.theme.toggled().Name + " mode"
	}
	return scroll.SectionID(m.hoverNav).Label()
}

// navToggle marks the theme toggle in Model.hoverNav.
const navToggle = "toggle"
