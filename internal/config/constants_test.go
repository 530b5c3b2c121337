package config

import "testing"

func TestConstants(t *testing.T) {
	if TypeInterval <= 0 || EraseInterval <= 0 || HoldDuration <= 0 {
		t.Fatalf("typing durations must be positive")
	}
	if EraseInterval >= TypeInterval {
		t.Fatalf("erasing should be faster than typing")
	}
	if ActivationLinePx != 100 {
		t.Fatalf("unexpected activation line %d", ActivationLinePx)
	}
	if ActivationLineRows <= 0 {
		t.Fatalf("ActivationLineRows must be positive")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if SkillLevels != 5 {
		t.Fatalf("skill badges draw five dots")
	}
	if MinContentWidth > MaxContentWidth {
		t.Fatalf("content width bounds are inverted")
	}
}
