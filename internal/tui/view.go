package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/folio/internal/util"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(),
		strings.Repeat(" ", gutter),
		m.viewport.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus(), m.helpView())
}

func (m Model) helpView() string {
	m.help.Styles.ShortKey = m.theme.Dim.Bold(true)
	m.help.Styles.ShortDesc = m.theme.Dim
	m.help.Styles.FullKey = m.theme.Dim.Bold(true)
	m.help.Styles.FullDesc = m.theme.Dim
	return m.help.View(m.keys.KeyMap(m.mode()))
}

func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.helpView())
}

// renderStatus shows a transient message, the hovered tooltip, or where the
// reader is on the page.
func (m Model) renderStatus() string {
	t := m.theme
	var line string
	switch {
	case m.status != "" && m.statusErr:
		line = t.Error.Render(m.status)
	case m.status != "":
		line = t.Status.Render(m.status)
	case m.tooltip() != "":
		line = t.Typed.Render(m.tooltip())
	default:
		line = t.Status.Render(fmt.Sprintf("%s  |  %3.0f%%  |  %s theme  |  v%s",
			m.ActiveSection().Label(),
			m.viewport.ScrollPercent()*100,
			t.Name,
			VersionLabel(),
		))
	}
	return util.Truncate(line, m.width)
}

func (m Model) renderModal() string {
	t := m.theme
	var b strings.Builder
	if s, ok := m.modal.(*MessageSentState); ok {
		b.WriteString(t.Title.Render("Message sent! (Demo only)") + "\n\n")
		b.WriteString(t.Body.Render("Thanks for reaching out. Nothing was transmitted.") + "\n")
		b.WriteString(t.Dim.Render("Reference: "+s.Reference) + "\n\n")
	}
	b.WriteString(t.Dim.Render("[enter] close"))
	return t.Modal.Render(b.String())
}
