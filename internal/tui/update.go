package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/folio/internal/scroll"
	"github.com/akyairhashvil/folio/internal/typing"
	"github.com/akyairhashvil/folio/internal/util"
)

// wheelStep is how many rows one wheel notch scrolls.
const wheelStep = 3

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case typingMsg:
		m.typed = typing.State(msg)
		m.refresh()
		return m, m.session.bridge.listen()
	case scrollFrameMsg:
		if msg.id != m.anim.id || !m.anim.active {
			return m, nil
		}
		off, done := m.anim.step()
		m.setOffset(off)
		if done {
			return m, nil
		}
		return m, scrollFrameCmd(m.anim.id)
	case exportDoneMsg:
		if msg.err != nil {
			util.LogError("export resume", msg.err)
			m.setStatusError(fmt.Sprintf("Resume export failed: %v", msg.err))
			return m, nil
		}
		m.setStatus("Resume saved to " + msg.path)
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Anything else, such as cursor blinks, belongs to the form.
	if m.form.active {
		cmd := m.form.update(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status, m.statusErr = "", false

	next, cmd, handled := m.keys.Handle(m, msg)
	if handled {
		return next, cmd
	}
	if m.form.active {
		cmd := m.form.update(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.modal != nil {
		if click {
			m.modal = nil
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
		return m, nil
	}

	if msg.X < sidebarWidth(m.width) {
		id, toggle, ok := sidebarHit(msg.Y)
		switch {
		case !ok:
			m.hoverNav = ""
		case toggle:
			m.hoverNav = navToggle
		default:
			m.hoverNav = string(id)
		}
		if m.hoverCard >= 0 {
			m.hoverCard = -1
			m.refresh()
		}
		if !click || !ok {
			return m, nil
		}
		if toggle {
			return m.toggleTheme()
		}
		return m.jumpTo(id)
	}

	m.hoverNav = ""
	if msg.Y >= m.viewport.Height {
		return m, nil
	}
	x := msg.X - sidebarWidth(m.width) - gutter
	y := msg.Y + m.viewport.YOffset
	if card := m.doc.cardAt(y); card != m.hoverCard {
		m.hoverCard = card
		m.refresh()
	}
	if !click {
		return m, nil
	}
	if h, ok := m.doc.hitAt(x, y); ok {
		return m.activate(h)
	}
	return m, nil
}

// activate runs the action behind a clicked region.
func (m Model) activate(h hitbox) (Model, tea.Cmd) {
	switch h.action {
	case hitViewWork:
		return m.jumpTo(scroll.Projects)
	case hitContactMe:
		return m.openContact()
	case hitResume:
		return m.exportResume()
	case hitCard:
		m.focusCard = h.index
		m.refresh()
		return m.openCard()
	case hitField:
		cmd := m.form.enter(formField(h.index))
		m.refresh()
		return m, cmd
	case hitSend:
		return m.sendMessage()
	case hitSocial:
		s := m.profile.Socials[h.index]
		m.setStatus(s.Label + ": " + s.Href)
	}
	return m, nil
}
