package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/akyairhashvil/folio/internal/config"
)

// scrollAnim eases the viewport toward a target offset with a critically
// damped spring. Each animation gets a fresh id; frames carrying an older id
// are dropped so a new jump cleanly replaces one in flight.
type scrollAnim struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	id     int
	active bool
}

func newScrollAnim() scrollAnim {
	return scrollAnim{
		spring: harmonica.NewSpring(harmonica.FPS(config.ScrollFPS), config.ScrollFrequency, config.ScrollDamping),
	}
}

func (a *scrollAnim) start(from, to int) tea.Cmd {
	a.id++
	a.pos = float64(from)
	a.vel = 0
	a.target = float64(to)
	a.active = true
	return scrollFrameCmd(a.id)
}

// step advances one frame and returns the offset to show.
func (a *scrollAnim) step() (offset int, done bool) {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.target-a.pos) < config.ScrollSettleRows && math.Abs(a.vel) < config.ScrollSettleRows {
		a.pos, a.vel = a.target, 0
		a.active = false
		return int(a.target), true
	}
	return int(math.Round(a.pos)), false
}

func (a *scrollAnim) cancel() {
	if a.active {
		a.id++
		a.active = false
	}
}

func scrollFrameCmd(id int) tea.Cmd {
	return tea.Tick(config.ScrollFrame, func(time.Time) tea.Msg {
		return scrollFrameMsg{id: id}
	})
}
