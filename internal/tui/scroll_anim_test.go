package tui

import "testing"

func TestScrollAnimConvergesMonotonically(t *testing.T) {
	a := newScrollAnim()
	a.start(0, 40)
	last := 0
	for i := 0; i < 1000; i++ {
		off, done := a.step()
		if off < last || off > 40 {
			t.Fatalf("frame %d: offset %d after %d", i, off, last)
		}
		last = off
		if done {
			if off != 40 || a.active {
				t.Fatalf("expected to settle on 40, got %d", off)
			}
			return
		}
	}
	t.Fatalf("animation never settled")
}

func TestScrollAnimCancelInvalidatesFrames(t *testing.T) {
	a := newScrollAnim()
	a.start(0, 10)
	id := a.id
	a.cancel()
	if a.active || a.id == id {
		t.Fatalf("cancel should deactivate and bump the id")
	}
	a.cancel()
	if a.id != id+1 {
		t.Fatalf("cancelling an idle animation should not bump the id")
	}
}
