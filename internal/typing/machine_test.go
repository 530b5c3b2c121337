package typing

import (
	"strings"
	"testing"
	"time"
)

func mustMachine(t *testing.T, phrases ...string) *Machine {
	t.Helper()
	m, err := NewMachine(phrases, DefaultTimings())
	if err != nil {
		t.Fatalf("NewMachine failed: %v", err)
	}
	return m
}

func TestNewMachineRejectsEmptyList(t *testing.T) {
	if _, err := NewMachine(nil, DefaultTimings()); err != ErrNoPhrases {
		t.Fatalf("expected ErrNoPhrases, got %v", err)
	}
}

func TestGrowingReachesHoldAfterPhraseLengthTicks(t *testing.T) {
	m := mustMachine(t, "Data Analyst", "IoT Developer")
	st := m.State()
	if st.Index != 0 || st.Text != "" || st.Mode != Growing {
		t.Fatalf("unexpected initial state %+v", st)
	}
	for i := 0; i < len("Data Analyst"); i++ {
		if m.Delay() != 100*time.Millisecond {
			t.Fatalf("tick %d: expected 100ms delay, got %v", i, m.Delay())
		}
		st = m.Step()
	}
	if st.Mode != HoldingFull || st.Text != "Data Analyst" {
		t.Fatalf("expected full phrase held, got %+v", st)
	}
}

func TestHoldThenShrinkAdvancesPhrase(t *testing.T) {
	m := mustMachine(t, "abc", "de")
	for i := 0; i < 3; i++ {
		m.Step()
	}
	if m.Delay() != 2000*time.Millisecond {
		t.Fatalf("expected 2s hold, got %v", m.Delay())
	}
	st := m.Step()
	if st.Mode != Shrinking || st.Text != "abc" {
		t.Fatalf("expected shrinking with full text, got %+v", st)
	}
	for i := 0; i < 3; i++ {
		if m.Delay() != 50*time.Millisecond {
			t.Fatalf("expected 50ms erase delay, got %v", m.Delay())
		}
		st = m.Step()
	}
	if st.Text != "" || st.Index != 1 || st.Mode != Growing {
		t.Fatalf("expected next phrase growing from empty, got %+v", st)
	}
}

func TestTwoPhraseCycleIsDeterministic(t *testing.T) {
	m := mustMachine(t, "A", "BB")
	want := []State{
		{0, "A", HoldingFull},
		{0, "A", Shrinking},
		{1, "", Growing},
		{1, "B", Growing},
		{1, "BB", HoldingFull},
		{1, "BB", Shrinking},
		{1, "B", Shrinking},
		{0, "", Growing},
		{0, "A", HoldingFull},
	}
	for i, w := range want {
		got := m.Step()
		if got != w {
			t.Fatalf("step %d: want %+v, got %+v", i, w, got)
		}
	}
}

func TestSinglePhraseKeepsCycling(t *testing.T) {
	m := mustMachine(t, "Go")
	var modes []Mode
	for i := 0; i < 12; i++ {
		modes = append(modes, m.Step().Mode)
		if m.State().Index != 0 {
			t.Fatalf("index left the only phrase: %+v", m.State())
		}
	}
	holds := 0
	for _, mode := range modes {
		if mode == HoldingFull {
			holds++
		}
	}
	if holds < 2 {
		t.Fatalf("expected the phrase to be typed more than once, modes=%v", modes)
	}
}

func TestEmptyPhraseSkipsGrowing(t *testing.T) {
	m := mustMachine(t, "", "x")
	if st := m.State(); st.Mode != HoldingFull || st.Text != "" {
		t.Fatalf("empty first phrase should start held, got %+v", st)
	}
	st := m.Step()
	if st.Index != 1 || st.Mode != Growing {
		t.Fatalf("empty phrase should advance when shrinking starts, got %+v", st)
	}
}

func TestAllEmptyPhrasesDoNotSpin(t *testing.T) {
	m := mustMachine(t, "", "")
	for i := 0; i < 4; i++ {
		st := m.Step()
		if st.Mode != HoldingFull || st.Text != "" {
			t.Fatalf("step %d: expected held empty phrase, got %+v", i, st)
		}
	}
}

func TestTextIsAlwaysRunePrefix(t *testing.T) {
	phrases := []string{"Développeur", "日本語", "ok"}
	m := mustMachine(t, phrases...)
	for i := 0; i < 200; i++ {
		st := m.Step()
		if st.Index < 0 || st.Index >= len(phrases) {
			t.Fatalf("index out of range: %+v", st)
		}
		if !strings.HasPrefix(phrases[st.Index], st.Text) {
			t.Fatalf("%q is not a prefix of %q", st.Text, phrases[st.Index])
		}
	}
}

func TestModeString(t *testing.T) {
	if Growing.String() != "growing" || HoldingFull.String() != "holding" || Shrinking.String() != "shrinking" {
		t.Fatalf("unexpected mode names")
	}
	if Mode(42).String() != "unknown" {
		t.Fatalf("expected unknown for out-of-range mode")
	}
}
