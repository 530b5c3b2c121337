package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/folio/internal/typing"
)

// typingBridge forwards animator notifications, which arrive on timer
// goroutines, to the Bubble Tea loop. Only the newest state is kept.
type typingBridge struct {
	updates chan typing.State
	done    chan struct{}
	cancel  func()
	once    sync.Once
}

func newTypingBridge(a *typing.Animator) *typingBridge {
	b := &typingBridge{
		updates: make(chan typing.State, 1),
		done:    make(chan struct{}),
	}
	b.cancel = a.Subscribe(b.push)
	return b
}

func (b *typingBridge) push(s typing.State) {
	for {
		select {
		case <-b.done:
			return
		case b.updates <- s:
			return
		default:
			select {
			case <-b.updates:
			default:
			}
		}
	}
}

// listen blocks until the next state or until the bridge is closed.
func (b *typingBridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-b.updates:
			return typingMsg(s)
		case <-b.done:
			return nil
		}
	}
}

func (b *typingBridge) close() {
	b.once.Do(func() {
		b.cancel()
		close(b.done)
	})
}
