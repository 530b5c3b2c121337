package tui

import tea "github.com/charmbracelet/bubbletea"

type ModalType int

const (
	ModalNone ModalType = iota
	ModalMessageSent
)

type ModalState interface {
	Type() ModalType
	HandleKey(key string) (ModalState, tea.Cmd)
}

// MessageSentState acknowledges a contact form submission. Nothing is sent;
// Reference only lets the user match the dialog with the log line.
type MessageSentState struct {
	Reference string
}

func (s *MessageSentState) Type() ModalType { return ModalMessageSent }

// HandleKey dismisses the dialog on enter, esc or space.
func (s *MessageSentState) HandleKey(key string) (ModalState, tea.Cmd) {
	switch key {
	case "enter", "esc", " ":
		return nil, nil
	}
	return s, nil
}
