package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/folio/internal/config"
)

type formField int

const (
	fieldName formField = iota
	fieldEmail
	fieldMessage
	fieldSend
	fieldCount
)

// contactForm is the demo message form. Its values are never sent anywhere.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   formField
	active  bool
}

func newContactForm(width int) contactForm {
	name := textinput.New()
	name.Placeholder = "Your Name"
	name.Prompt = ""
	name.CharLimit = config.MaxNameLength

	email := textinput.New()
	email.Placeholder = "Your Email"
	email.Prompt = ""
	email.CharLimit = config.MaxEmailLength

	msg := textarea.New()
	msg.Placeholder = "Your Message"
	msg.ShowLineNumbers = false
	msg.Prompt = ""
	msg.CharLimit = config.MaxMessageLength
	msg.SetHeight(config.MessageRows)

	f := contactForm{name: name, email: email, message: msg}
	f.setWidth(width)
	return f
}

// setWidth sizes the inputs for a form column of width cells, borders included.
func (f *contactForm) setWidth(width int) {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	f.name.Width = inner - 1
	f.email.Width = inner - 1
	f.message.SetWidth(inner)
}

// enter activates the form with the given field focused.
func (f *contactForm) enter(field formField) tea.Cmd {
	f.active = true
	return f.focusField(field)
}

func (f *contactForm) leave() {
	f.active = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

func (f *contactForm) focusField(field formField) tea.Cmd {
	f.focus = (field + fieldCount) % fieldCount
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	case fieldMessage:
		return f.message.Focus()
	}
	return nil
}

func (f *contactForm) next() tea.Cmd { return f.focusField(f.focus + 1) }
func (f *contactForm) prev() tea.Cmd { return f.focusField(f.focus - 1) }

// update forwards a message to the focused input.
func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
}

// summary reports how many fields were filled in and the message length.
// The values themselves never leave the form.
func (f contactForm) summary() (filled, chars int) {
	for _, v := range []string{f.name.Value(), f.email.Value(), f.message.Value()} {
		if strings.TrimSpace(v) != "" {
			filled++
		}
	}
	return filled, len([]rune(f.message.Value()))
}
