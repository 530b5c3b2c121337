package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/akyairhashvil/folio/internal/scroll"
)

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	browse := []inputMode{modeBrowse}
	form := []inputMode{modeForm}
	modal := []inputMode{modeModal}

	bind := func(keys []string, helpKey, desc string, h KeyHandler, modes []inputMode, short bool, priority int) {
		opts := []key.BindingOpt{key.WithKeys(keys...)}
		if desc != "" {
			opts = append(opts, key.WithHelp(helpKey, desc))
		}
		r.Register(KeyBinding{Binding: key.NewBinding(opts...), Handler: h, Modes: modes, Short: short, Priority: priority})
	}

	bind([]string{"ctrl+c"}, "", "", handleQuit, nil, false, 100)
	bind([]string{"enter", "esc", " "}, "enter", "close", handleModalKey, modal, true, 50)

	bind([]string{"1", "2", "3", "4"}, "1-4", "jump", handleJump, browse, true, 10)
	bind([]string{"n"}, "n/p", "next/prev section", handleNextSection, browse, true, 10)
	bind([]string{"p"}, "n/p", "next/prev section", handlePrevSection, browse, false, 10)
	bind([]string{"down", "j"}, "↑/↓", "scroll", handleScrollDown, browse, false, 10)
	bind([]string{"up", "k"}, "↑/↓", "scroll", handleScrollUp, browse, false, 10)
	bind([]string{"pgdown", " "}, "pgup/pgdn", "page", handlePageDown, browse, false, 10)
	bind([]string{"pgup"}, "pgup/pgdn", "page", handlePageUp, browse, false, 10)
	bind([]string{"home", "g"}, "g/G", "top/bottom", handleTop, browse, false, 10)
	bind([]string{"end", "G"}, "g/G", "top/bottom", handleBottom, browse, false, 10)
	bind([]string{"w"}, "w", "view my work", handleViewWork, browse, false, 10)
	bind([]string{"tab"}, "tab", "focus project", handleNextCard, browse, true, 10)
	bind([]string{"shift+tab"}, "", "", handlePrevCard, browse, false, 10)
	bind([]string{"enter"}, "enter", "open project", handleOpenCard, browse, false, 10)
	bind([]string{"d"}, "d", "download resume", handleDownload, browse, true, 10)
	bind([]string{"c"}, "c", "contact", handleContact, browse, true, 10)
	bind([]string{"t"}, "t", "theme", handleTheme, browse, true, 10)
	bind([]string{"?"}, "?", "help", handleHelp, browse, true, 10)
	bind([]string{"q"}, "q", "quit", handleQuit, browse, true, 10)

	bind([]string{"tab"}, "tab", "next field", handleNextField, form, true, 10)
	bind([]string{"shift+tab"}, "shift+tab", "prev field", handlePrevField, form, true, 10)
	bind([]string{"enter"}, "enter", "send", handleFormEnter, form, true, 10)
	bind([]string{"esc"}, "esc", "leave form", handleLeaveForm, form, true, 10)
	return r
}

func handleQuit(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.Close()
	m.quitting = true
	return m, tea.Quit, true
}

func handleModalKey(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.modal == nil {
		return m, nil, false
	}
	next, cmd := m.modal.HandleKey(msg.String())
	m.modal = next
	return m, cmd, true
}

func handleJump(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	n, err := strconv.Atoi(msg.String())
	if err != nil || n < 1 || n > len(scroll.Sections) {
		return m, nil, false
	}
	next, cmd := m.jumpTo(scroll.Sections[n-1])
	return next, cmd, true
}

func handleNextSection(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	i := scroll.Index(m.ActiveSection())
	if i+1 >= len(scroll.Sections) {
		return m, nil, true
	}
	next, cmd := m.jumpTo(scroll.Sections[i+1])
	return next, cmd, true
}

func handlePrevSection(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	i := scroll.Index(m.ActiveSection())
	if i <= 0 {
		next, cmd := m.jumpTo(scroll.Sections[0])
		return next, cmd, true
	}
	next, cmd := m.jumpTo(scroll.Sections[i-1])
	return next, cmd, true
}

func handleScrollDown(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.scrollBy(1)
	return m, nil, true
}

func handleScrollUp(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.scrollBy(-1)
	return m, nil, true
}

func handlePageDown(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.scrollBy(m.viewport.Height)
	return m, nil, true
}

func handlePageUp(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.scrollBy(-m.viewport.Height)
	return m, nil, true
}

func handleTop(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.scrollBy(-m.viewport.YOffset)
	return m, nil, true
}

func handleBottom(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.scrollBy(m.maxOffset() - m.viewport.YOffset)
	return m, nil, true
}

func handleViewWork(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	next, cmd := m.jumpTo(scroll.Projects)
	return next, cmd, true
}

func handleNextCard(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	return m.moveCard(1), nil, true
}

func handlePrevCard(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	return m.moveCard(-1), nil, true
}

func handleOpenCard(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.focusCard < 0 {
		return m, nil, false
	}
	next, cmd := m.openCard()
	return next, cmd, true
}

func handleDownload(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	next, cmd := m.exportResume()
	return next, cmd, true
}

func handleContact(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	next, cmd := m.openContact()
	return next, cmd, true
}

func handleTheme(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	next, cmd := m.toggleTheme()
	return next, cmd, true
}

func handleHelp(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.help.ShowAll = !m.help.ShowAll
	if m.ready {
		m.resize(m.width, m.height)
	}
	return m, nil, true
}

func handleNextField(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	cmd := m.form.next()
	m.refresh()
	m.showField()
	return m, cmd, true
}

func handlePrevField(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	cmd := m.form.prev()
	m.refresh()
	m.showField()
	return m, cmd, true
}

// handleFormEnter sends from the button and advances from single-line
// fields. In the message box enter is a newline.
func handleFormEnter(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch m.form.focus {
	case fieldSend:
		next, cmd := m.sendMessage()
		return next, cmd, true
	case fieldName, fieldEmail:
		return handleNextField(m, msg)
	}
	return m, nil, false
}

func handleLeaveForm(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.form.leave()
	m.refresh()
	return m, nil, true
}

// --- Actions shared by keys and mouse ---

func (m Model) toggleTheme() (Model, tea.Cmd) {
	m.theme = m.theme.toggled()
	m.refresh()
	logrus.WithField("theme", m.theme.Name).Debug("theme toggled")
	return m, nil
}

func (m Model) moveCard(delta int) Model {
	n := len(m.profile.Projects)
	if n == 0 {
		return m
	}
	switch {
	case m.focusCard < 0 && delta < 0:
		m.focusCard = n - 1
	case m.focusCard < 0:
		m.focusCard = 0
	default:
		m.focusCard = (m.focusCard + delta + n) % n
	}
	m.refresh()
	for _, h := range m.doc.hits {
		if h.action == hitCard && h.index == m.focusCard {
			m.ensureVisible(h.top, h.bottom)
			break
		}
	}
	return m
}

// openCard reports where the focused project links to. A terminal cannot
// follow the link, so the address goes to the status line.
func (m Model) openCard() (Model, tea.Cmd) {
	if m.focusCard < 0 || m.focusCard >= len(m.profile.Projects) {
		return m, nil
	}
	p := m.profile.Projects[m.focusCard]
	if !p.HasLink() {
		m.setStatus(p.Title + " has no public link yet")
		return m, nil
	}
	m.setStatus(p.Title + ": " + p.Link)
	return m, nil
}

func (m Model) openContact() (Model, tea.Cmd) {
	focus := m.form.enter(fieldName)
	m.refresh()
	next, cmd := m.jumpTo(scroll.Contact)
	return next, tea.Batch(focus, cmd)
}

// showField keeps the focused form control on screen.
func (m *Model) showField() {
	for _, h := range m.doc.hits {
		if (h.action == hitField && formField(h.index) == m.form.focus) ||
			(h.action == hitSend && m.form.focus == fieldSend) {
			m.ensureVisible(h.top, h.bottom)
			return
		}
	}
}

func (m Model) exportResume() (Model, tea.Cmd) {
	m.setStatus("Exporting resume...")
	export, p, dir := m.export, m.profile, m.resumeDir
	return m, func() tea.Msg {
		path, err := export(p, dir)
		return exportDoneMsg{path: path, err: err}
	}
}

// sendMessage acknowledges the form. Nothing is transmitted and no field is
// required; the reference only ties the dialog to its log line.
func (m Model) sendMessage() (Model, tea.Cmd) {
	ref := uuid.NewString()
	filled, chars := m.form.summary()
	logrus.WithFields(logrus.Fields{
		"reference": ref,
		"fields":    filled,
		"chars":     chars,
	}).Info("contact message acknowledged, not delivered")
	m.form.reset()
	m.form.leave()
	m.modal = &MessageSentState{Reference: ref}
	m.refresh()
	return m, nil
}
