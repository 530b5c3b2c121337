package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// inputMode selects which bindings are live.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeForm
	modeModal
)

type KeyHandler func(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Modes    []inputMode
	Priority int
	// Short bindings appear in the one-line help.
	Short bool
}

func (b KeyBinding) AppliesTo(mode inputMode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle runs the first binding for the current mode that matches msg and
// reports it handled.
func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	mode := m.mode()
	for _, b := range r.bindings {
		if !b.AppliesTo(mode) || !key.Matches(msg, b.Binding) {
			continue
		}
		next, cmd, handled := b.Handler(m, msg)
		if handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(mode inputMode) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(mode) {
			out = append(out, b)
		}
	}
	return out
}

// KeyMap adapts the bindings of one mode to bubbles/help.
func (r *HandlerRegistry) KeyMap(mode inputMode) keyMap {
	var km keyMap
	seen := make(map[string]bool)
	for _, b := range r.BindingsFor(mode) {
		h := b.Binding.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		km.full = append(km.full, b.Binding)
		if b.Short {
			km.short = append(km.short, b.Binding)
		}
	}
	return km
}

type keyMap struct {
	short []key.Binding
	full  []key.Binding
}

func (k keyMap) ShortHelp() []key.Binding { return k.short }

func (k keyMap) FullHelp() [][]key.Binding {
	const perColumn = 4
	var cols [][]key.Binding
	for i := 0; i < len(k.full); i += perColumn {
		end := i + perColumn
		if end > len(k.full) {
			end = len(k.full)
		}
		cols = append(cols, k.full[i:end])
	}
	return cols
}
