package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryPriorityAndModes(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	handler := func(name string, handled bool) KeyHandler {
		return func(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
			calls = append(calls, name)
			return m, nil, handled
		}
	}
	x := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "do x"))
	r.Register(KeyBinding{Binding: x, Handler: handler("low", true), Priority: 1})
	r.Register(KeyBinding{Binding: x, Handler: handler("high-pass", false), Priority: 5})
	r.Register(KeyBinding{Binding: x, Handler: handler("form-only", true), Modes: []inputMode{modeForm}, Priority: 9})

	_, _, handled := r.Handle(Model{}, keyMsg("x"))
	if !handled {
		t.Fatalf("expected x handled")
	}
	if len(calls) != 2 || calls[0] != "high-pass" || calls[1] != "low" {
		t.Fatalf("unexpected call order %v", calls)
	}
	if _, _, handled := r.Handle(Model{}, keyMsg("y")); handled {
		t.Fatalf("y should not be handled")
	}
}

func TestKeyMapDeduplicatesHelp(t *testing.T) {
	r := defaultRegistry()
	km := r.KeyMap(modeBrowse)
	seen := map[string]bool{}
	for _, b := range km.full {
		k := b.Help().Key
		if seen[k] {
			t.Fatalf("duplicate help key %q", k)
		}
		seen[k] = true
	}
	if !seen["1-4"] || !seen["q"] {
		t.Fatalf("browse help missing bindings: %v", seen)
	}
	if seen["ctrl+c"] {
		t.Fatalf("ctrl+c should not be listed")
	}
	if len(km.ShortHelp()) == 0 || len(km.FullHelp()) == 0 {
		t.Fatalf("expected help entries")
	}
}

func TestFormModeHidesBrowseKeys(t *testing.T) {
	r := defaultRegistry()
	for _, b := range r.BindingsFor(modeForm) {
		for _, k := range b.Binding.Keys() {
			if k == "q" || k == "t" {
				t.Fatalf("browse key %q active in form mode", k)
			}
		}
	}
}

func TestMessageSentStateKeys(t *testing.T) {
	s := &MessageSentState{Reference: "ref"}
	if next, _ := s.HandleKey("x"); next != s {
		t.Fatalf("unrelated key should keep the modal")
	}
	if next, _ := s.HandleKey("esc"); next != nil {
		t.Fatalf("esc should dismiss the modal")
	}
	if s.Type() != ModalMessageSent {
		t.Fatalf("unexpected modal type")
	}
}
