package typing

import (
	"sync"

	"github.com/akyairhashvil/folio/internal/clock"
)

// Animator runs a Machine on a Scheduler. Only one timer is ever pending;
// scheduling a step cancels the previous one and Stop cancels the last.
type Animator struct {
	mu      sync.Mutex
	machine *Machine
	sched   clock.Scheduler
	pending clock.Timer
	gen     uint64
	started bool
	stopped bool
	subs    map[int]func(State)
	nextSub int
}

// Option configures an Animator.
type Option func(*animatorConfig)

type animatorConfig struct {
	timings Timings
}

// WithTimings overrides DefaultTimings.
func WithTimings(t Timings) Option {
	return func(c *animatorConfig) { c.timings = t }
}

// NewAnimator builds an animator over phrases. It does nothing until Start.
func NewAnimator(sched clock.Scheduler, phrases []string, opts ...Option) (*Animator, error) {
	cfg := animatorConfig{timings: DefaultTimings()}
	for _, opt := range opts {
		opt(&cfg)
	}
	m, err := NewMachine(phrases, cfg.timings)
	if err != nil {
		return nil, err
	}
	return &Animator{
		machine: m,
		sched:   sched,
		subs:    make(map[int]func(State)),
	}, nil
}

// Start schedules the first step. Calling it twice, or after Stop, does nothing.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started || a.stopped {
		return
	}
	a.started = true
	a.scheduleLocked()
}

// Stop cancels the pending step and drops all subscribers. The state never
// changes after Stop returns.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	a.stopped = true
	a.gen++
	if a.pending != nil {
		a.pending.Stop()
		a.pending = nil
	}
	a.subs = make(map[int]func(State))
}

// Running reports whether the animator has been started and not stopped.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started && !a.stopped
}

func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.State()
}

// Subscribe registers fn to receive every state change. The returned func
// removes the subscription.
func (a *Animator) Subscribe(fn func(State)) (cancel func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs, id)
	}
}

func (a *Animator) scheduleLocked() {
	if a.pending != nil {
		a.pending.Stop()
	}
	a.gen++
	gen := a.gen
	a.pending = a.sched.AfterFunc(a.machine.Delay(), func() { a.fire(gen) })
}

func (a *Animator) fire(gen uint64) {
	a.mu.Lock()
	if a.stopped || gen != a.gen {
		a.mu.Unlock()
		return
	}
	st := a.machine.Step()
	a.scheduleLocked()
	subs := make([]func(State), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}
