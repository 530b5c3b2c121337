package typing

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/folio/internal/clock"
	"github.com/akyairhashvil/folio/internal/clock/mocks"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestAnimator(t *testing.T, phrases ...string) (*Animator, *clock.Manual) {
	t.Helper()
	c := clock.NewManual(epoch)
	a, err := NewAnimator(c, phrases)
	if err != nil {
		t.Fatalf("NewAnimator failed: %v", err)
	}
	return a, c
}

func TestAnimatorTypesOnSimulatedClock(t *testing.T) {
	a, c := newTestAnimator(t, "Data Analyst", "Problem Solver")
	a.Start()

	c.Advance(time.Duration(len("Data Analyst")) * 100 * time.Millisecond)
	st := a.State()
	if st.Mode != HoldingFull || st.Text != "Data Analyst" {
		t.Fatalf("expected held phrase, got %+v", st)
	}

	c.Advance(1999 * time.Millisecond)
	if a.State().Mode != HoldingFull {
		t.Fatalf("hold ended early: %+v", a.State())
	}
	c.Advance(time.Millisecond)
	if a.State().Mode != Shrinking {
		t.Fatalf("expected shrinking after 2s, got %+v", a.State())
	}

	c.Advance(time.Duration(len("Data Analyst")) * 50 * time.Millisecond)
	st = a.State()
	if st.Text != "" || st.Index != 1 || st.Mode != Growing {
		t.Fatalf("expected second phrase growing, got %+v", st)
	}
}

func TestAnimatorDoesNothingBeforeStart(t *testing.T) {
	a, c := newTestAnimator(t, "abc")
	c.Advance(time.Minute)
	if a.State().Text != "" {
		t.Fatalf("animator moved before Start: %+v", a.State())
	}
	if c.Pending() != 0 {
		t.Fatalf("expected no timers before Start")
	}
}

func TestAnimatorStopCancelsPendingTimer(t *testing.T) {
	a, c := newTestAnimator(t, "abc")
	a.Start()
	c.Advance(100 * time.Millisecond)
	a.Stop()
	if c.Pending() != 0 {
		t.Fatalf("expected no pending timers after Stop, got %d", c.Pending())
	}
	before := a.State()
	c.Advance(time.Minute)
	if a.State() != before {
		t.Fatalf("state changed after Stop: %+v -> %+v", before, a.State())
	}
	a.Start()
	if a.Running() || c.Pending() != 0 {
		t.Fatalf("Start after Stop must not revive the animator")
	}
}

func TestAnimatorKeepsOneTimerPending(t *testing.T) {
	a, c := newTestAnimator(t, "hello", "yo")
	a.Start()
	a.Start()
	for i := 0; i < 50; i++ {
		c.Advance(50 * time.Millisecond)
		if c.Pending() != 1 {
			t.Fatalf("after %d advances expected one pending timer, got %d", i, c.Pending())
		}
	}
}

func TestAnimatorNotifiesSubscribers(t *testing.T) {
	a, c := newTestAnimator(t, "ab")
	var seen []string
	cancel := a.Subscribe(func(st State) { seen = append(seen, st.Text) })
	a.Start()
	c.Advance(200 * time.Millisecond)
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "ab" {
		t.Fatalf("unexpected notifications %v", seen)
	}
	cancel()
	c.Advance(time.Second * 3)
	if len(seen) != 2 {
		t.Fatalf("cancelled subscriber still notified: %v", seen)
	}
}

func TestAnimatorCustomTimings(t *testing.T) {
	c := clock.NewManual(epoch)
	a, err := NewAnimator(c, []string{"xy"}, WithTimings(Timings{Type: time.Second, Hold: time.Second, Erase: time.Second}))
	if err != nil {
		t.Fatalf("NewAnimator failed: %v", err)
	}
	a.Start()
	c.Advance(999 * time.Millisecond)
	if a.State().Text != "" {
		t.Fatalf("custom type interval ignored: %+v", a.State())
	}
	c.Advance(time.Millisecond)
	if a.State().Text != "x" {
		t.Fatalf("expected first rune after 1s, got %+v", a.State())
	}
}

func TestAnimatorSupersedesTimerOnEachStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockScheduler(ctrl)
	first := mocks.NewMockTimer(ctrl)
	second := mocks.NewMockTimer(ctrl)

	var fire func()
	gomock.InOrder(
		sched.EXPECT().AfterFunc(100*time.Millisecond, gomock.Any()).DoAndReturn(
			func(_ time.Duration, f func()) clock.Timer {
				fire = f
				return first
			}),
		first.EXPECT().Stop().Return(false),
		sched.EXPECT().AfterFunc(100*time.Millisecond, gomock.Any()).Return(second),
		second.EXPECT().Stop().Return(true),
	)

	a, err := NewAnimator(sched, []string{"abc"})
	if err != nil {
		t.Fatalf("NewAnimator failed: %v", err)
	}
	a.Start()
	fire()
	if a.State().Text != "a" {
		t.Fatalf("expected one rune typed, got %+v", a.State())
	}
	a.Stop()
}

func TestAnimatorIgnoresStaleCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockScheduler(ctrl)
	timer := mocks.NewMockTimer(ctrl)

	var fire func()
	sched.EXPECT().AfterFunc(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ time.Duration, f func()) clock.Timer {
			fire = f
			return timer
		})
	timer.EXPECT().Stop().Return(false)

	a, err := NewAnimator(sched, []string{"abc"})
	if err != nil {
		t.Fatalf("NewAnimator failed: %v", err)
	}
	a.Start()
	a.Stop()
	// The runtime may still deliver a callback that raced with Stop.
	fire()
	if a.State().Text != "" {
		t.Fatalf("stale callback mutated state: %+v", a.State())
	}
}
