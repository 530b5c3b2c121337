package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	c := NewManual(epoch)
	var got []string
	c.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(25 * time.Millisecond)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected order after 25ms: %v", got)
	}
	c.Advance(5 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("expected c to fire at 30ms, got %v", got)
	}
	if !c.Now().Equal(epoch.Add(30 * time.Millisecond)) {
		t.Fatalf("unexpected now %v", c.Now())
	}
}

func TestManualChainedCallbacksWithinWindow(t *testing.T) {
	c := NewManual(epoch)
	count := 0
	var tick func()
	tick = func() {
		count++
		c.AfterFunc(100*time.Millisecond, tick)
	}
	c.AfterFunc(100*time.Millisecond, tick)

	c.Advance(350 * time.Millisecond)
	if count != 3 {
		t.Fatalf("expected 3 ticks in 350ms, got %d", count)
	}
	if c.Pending() != 1 {
		t.Fatalf("expected the 400ms tick to stay pending, got %d", c.Pending())
	}
}

func TestManualStop(t *testing.T) {
	c := NewManual(epoch)
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Fatalf("first Stop should report true")
	}
	if timer.Stop() {
		t.Fatalf("second Stop should report false")
	}
	c.Advance(2 * time.Second)
	if fired {
		t.Fatalf("stopped timer fired")
	}
}

func TestManualNowMovesToCallbackDeadline(t *testing.T) {
	c := NewManual(epoch)
	var seen time.Time
	c.AfterFunc(40*time.Millisecond, func() { seen = c.Now() })
	c.Advance(time.Second)
	if !seen.Equal(epoch.Add(40 * time.Millisecond)) {
		t.Fatalf("callback saw now=%v", seen)
	}
}

func TestRealSchedulerStop(t *testing.T) {
	timer := Real().AfterFunc(time.Hour, func() {})
	if !timer.Stop() {
		t.Fatalf("expected Stop to cancel a pending real timer")
	}
}
