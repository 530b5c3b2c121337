// Package typing implements the looping type-and-erase effect used for the
// hero tagline: a phrase grows one character at a time, holds, shrinks, and
// the next phrase takes its place.
package typing

import (
	"errors"
	"time"

	"github.com/akyairhashvil/folio/internal/config"
)

// ErrNoPhrases is returned when an animator is built with an empty phrase list.
var ErrNoPhrases = errors.New("typing: phrase list is empty")

// Mode is the phase of the current phrase.
type Mode int

const (
	Growing Mode = iota
	HoldingFull
	Shrinking
)

func (m Mode) String() string {
	switch m {
	case Growing:
		return "growing"
	case HoldingFull:
		return "holding"
	case Shrinking:
		return "shrinking"
	default:
		return "unknown"
	}
}

// Timings sets how long the machine waits before each step in a given mode.
type Timings struct {
	Type  time.Duration
	Hold  time.Duration
	Erase time.Duration
}

// DefaultTimings types a character every 100ms, holds the full phrase for two
// seconds and erases a character every 50ms.
func DefaultTimings() Timings {
	return Timings{
		Type:  config.TypeInterval,
		Hold:  config.HoldDuration,
		Erase: config.EraseInterval,
	}
}

// State is a snapshot of the animation.
type State struct {
	Index int
	Text  string
	Mode  Mode
}

// Machine is the timer-free state machine behind Animator. Each call to Step
// stands for one timer expiration; Delay says how long that timer should be.
type Machine struct {
	phrases [][]rune
	timings Timings
	index   int
	shown   int
	mode    Mode
}

// NewMachine starts at the first phrase with nothing shown.
func NewMachine(phrases []string, timings Timings) (*Machine, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	m := &Machine{
		phrases: make([][]rune, len(phrases)),
		timings: timings,
	}
	for i, p := range phrases {
		m.phrases[i] = []rune(p)
	}
	m.settle()
	return m, nil
}

func (m *Machine) State() State {
	return State{
		Index: m.index,
		Text:  string(m.phrases[m.index][:m.shown]),
		Mode:  m.mode,
	}
}

// Delay is the wait before the next Step.
func (m *Machine) Delay() time.Duration {
	switch m.mode {
	case HoldingFull:
		return m.timings.Hold
	case Shrinking:
		return m.timings.Erase
	default:
		return m.timings.Type
	}
}

// Step applies one timer expiration and returns the new state.
func (m *Machine) Step() State {
	phrase := m.phrases[m.index]
	switch m.mode {
	case Growing:
		if m.shown < len(phrase) {
			m.shown++
		}
		if m.shown == len(phrase) {
			m.mode = HoldingFull
		}
	case HoldingFull:
		m.mode = Shrinking
	case Shrinking:
		if m.shown > 0 {
			m.shown--
		}
	}
	m.settle()
	return m.State()
}

// settle applies the zero-tick transitions: an empty phrase is complete as
// soon as it starts growing, and an empty display advances to the next phrase.
func (m *Machine) settle() {
	for {
		switch {
		case m.mode == Growing && len(m.phrases[m.index]) == 0:
			m.mode = HoldingFull
		case m.mode == Shrinking && m.shown == 0:
			m.index = (m.index + 1) % len(m.phrases)
			m.mode = Growing
		default:
			return
		}
	}
}
