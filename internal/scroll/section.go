// Package scroll decides which page section is current for a scroll position.
//
// A section is current when its anchor box straddles the activation line, a
// fixed offset below the top of the viewport. Sections are checked in their
// declared order and the first match wins.
package scroll

import "github.com/akyairhashvil/folio/internal/config"

// SectionID names an in-page anchor.
type SectionID string

const (
	Home     SectionID = "home"
	CV       SectionID = "cv"
	Projects SectionID = "projects"
	Contact  SectionID = "contact"
)

// Sections is the declared page order.
var Sections = []SectionID{Home, CV, Projects, Contact}

// DefaultActivationLine is the activation offset for pixel layouts.
const DefaultActivationLine = config.ActivationLinePx

// Label is the navigation caption for a section.
func (s SectionID) Label() string {
	switch s {
	case Home:
		return "Home"
	case CV:
		return "Resume"
	case Projects:
		return "Projects"
	case Contact:
		return "Contact"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the declared sections.
func (s SectionID) Valid() bool {
	return Index(s) >= 0
}

// Index returns the position of s in Sections, or -1.
func Index(s SectionID) int {
	for i, id := range Sections {
		if id == s {
			return i
		}
	}
	return -1
}

// Rect is an anchor's vertical extent relative to the viewport top.
type Rect struct {
	Top    int
	Bottom int
}

// Contains reports whether the activation line falls inside the rect.
func (r Rect) Contains(line int) bool {
	return r.Top <= line && r.Bottom >= line
}

// Resolve returns the first section, in declared order, whose rect contains
// line. Sections without a rect are skipped. ok is false when nothing matches.
func Resolve(rects map[SectionID]Rect, line int) (id SectionID, ok bool) {
	for _, s := range Sections {
		r, found := rects[s]
		if !found {
			continue
		}
		if r.Contains(line) {
			return s, true
		}
	}
	return "", false
}

// Layout holds anchor extents in document coordinates.
type Layout map[SectionID]Rect

// At converts the layout to viewport-relative rects for scroll offset y.
func (l Layout) At(y int) map[SectionID]Rect {
	out := make(map[SectionID]Rect, len(l))
	for id, r := range l {
		out[id] = Rect{Top: r.Top - y, Bottom: r.Bottom - y}
	}
	return out
}

// Offset returns the scroll offset that puts the top of s at the viewport top.
func (l Layout) Offset(s SectionID) (int, bool) {
	r, ok := l[s]
	if !ok {
		return 0, false
	}
	return r.Top, true
}
