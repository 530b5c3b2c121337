package scroll

import "sync"

// Tracker owns the active section. It is written only through Observe.
type Tracker struct {
	mu      sync.Mutex
	line    int
	active  SectionID
	closed  bool
	subs    map[int]func(SectionID)
	nextSub int
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithActivationLine sets the activation offset from the viewport top.
func WithActivationLine(line int) TrackerOption {
	return func(t *Tracker) { t.line = line }
}

// NewTracker returns a tracker whose active section is the first declared one.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		line:   DefaultActivationLine,
		active: Sections[0],
		subs:   make(map[int]func(SectionID)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ActivationLine returns the configured activation offset.
func (t *Tracker) ActivationLine() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.line
}

func (t *Tracker) Active() SectionID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Observe handles one scroll or resize event. When a section matches it
// becomes active; otherwise the previous selection is kept. Subscribers are
// told only about actual changes.
func (t *Tracker) Observe(rects map[SectionID]Rect) SectionID {
	t.mu.Lock()
	if t.closed {
		active := t.active
		t.mu.Unlock()
		return active
	}
	id, ok := Resolve(rects, t.line)
	if !ok || id == t.active {
		active := t.active
		t.mu.Unlock()
		return active
	}
	t.active = id
	subs := make([]func(SectionID), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
	return id
}

// Subscribe registers fn for active-section changes.
func (t *Tracker) Subscribe(fn func(SectionID)) (cancel func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, id)
	}
}

// Close deregisters every listener. Later events are ignored.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.subs = make(map[int]func(SectionID))
}
