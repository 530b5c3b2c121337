package scroll

import "testing"

func TestResolveFirstMatchInDeclaredOrder(t *testing.T) {
	rects := map[SectionID]Rect{
		Home:     {Top: -900, Bottom: -10},
		CV:       {Top: 40, Bottom: 600},
		Projects: {Top: 90, Bottom: 1400},
	}
	got, ok := Resolve(rects, 100)
	if !ok || got != CV {
		t.Fatalf("expected cv, got %q ok=%v", got, ok)
	}
}

func TestResolveInclusiveBounds(t *testing.T) {
	if got, ok := Resolve(map[SectionID]Rect{Contact: {Top: 100, Bottom: 400}}, 100); !ok || got != Contact {
		t.Fatalf("top edge should count, got %q ok=%v", got, ok)
	}
	if got, ok := Resolve(map[SectionID]Rect{Contact: {Top: -300, Bottom: 100}}, 100); !ok || got != Contact {
		t.Fatalf("bottom edge should count, got %q ok=%v", got, ok)
	}
}

func TestResolveMissingAnchorsAreSkipped(t *testing.T) {
	got, ok := Resolve(map[SectionID]Rect{Projects: {Top: 0, Bottom: 500}}, 100)
	if !ok || got != Projects {
		t.Fatalf("expected projects, got %q ok=%v", got, ok)
	}
	if _, ok := Resolve(nil, 100); ok {
		t.Fatalf("expected no match for an empty page")
	}
}

func TestResolveNoMatch(t *testing.T) {
	rects := map[SectionID]Rect{
		Home:    {Top: -2000, Bottom: -1200},
		Contact: {Top: -1100, Bottom: 50},
	}
	if got, ok := Resolve(rects, 100); ok {
		t.Fatalf("expected no match, got %q", got)
	}
}

func TestLayoutAt(t *testing.T) {
	l := Layout{
		Home: {Top: 0, Bottom: 19},
		CV:   {Top: 20, Bottom: 39},
	}
	rects := l.At(15)
	if rects[Home] != (Rect{Top: -15, Bottom: 4}) || rects[CV] != (Rect{Top: 5, Bottom: 24}) {
		t.Fatalf("unexpected relative rects %+v", rects)
	}
	if off, ok := l.Offset(CV); !ok || off != 20 {
		t.Fatalf("expected cv offset 20, got %d ok=%v", off, ok)
	}
	if _, ok := l.Offset(Contact); ok {
		t.Fatalf("expected missing section to report !ok")
	}
}

func TestSectionLabelsAndIndex(t *testing.T) {
	want := []string{"Home", "Resume", "Projects", "Contact"}
	for i, s := range Sections {
		if s.Label() != want[i] {
			t.Fatalf("label %d: want %s got %s", i, want[i], s.Label())
		}
		if Index(s) != i || !s.Valid() {
			t.Fatalf("index mismatch for %s", s)
		}
	}
	if SectionID("blog").Valid() {
		t.Fatalf("unknown section reported valid")
	}
}
