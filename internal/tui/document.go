package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/folio/internal/content"
	"github.com/akyairhashvil/folio/internal/scroll"
)

type hitAction int

const (
	hitViewWork hitAction = iota
	hitContactMe
	hitResume
	hitCard
	hitField
	hitSend
	hitSocial
)

// hitbox is a clickable region in document coordinates.
type hitbox struct {
	top, bottom int
	left, right int
	action      hitAction
	index       int
}

func (h hitbox) contains(x, y int) bool {
	return y >= h.top && y <= h.bottom && x >= h.left && x < h.right
}

// document is one rendering of the page plus the geometry the tracker and
// the mouse handlers need.
type document struct {
	lines  []string
	layout scroll.Layout
	hits   []hitbox
}

func (d document) content() string {
	return strings.Join(d.lines, "\n")
}

func (d document) hitAt(x, y int) (hitbox, bool) {
	for _, h := range d.hits {
		if h.contains(x, y) {
			return h, true
		}
	}
	return hitbox{}, false
}

// cardAt returns the project card under document line y.
func (d document) cardAt(y int) int {
	for _, h := range d.hits {
		if h.action == hitCard && y >= h.top && y <= h.bottom {
			return h.index
		}
	}
	return -1
}

// docView is everything a rendering depends on.
type docView struct {
	profile   content.Profile
	theme     Theme
	width     int
	height    int
	typed     string
	hoverCard int
	focusCard int
	form      *contactForm
}

type docBuilder struct {
	v     docView
	lines []string
	doc   document
}

func renderDocument(v docView) document {
	b := &docBuilder{v: v, doc: document{layout: scroll.Layout{}}}
	b.section(scroll.Home, true, b.hero)
	b.section(scroll.CV, false, b.cv)
	b.section(scroll.Projects, false, b.projects)
	b.section(scroll.Contact, true, b.contact)
	b.doc.lines = b.lines
	return b.doc
}

// section renders one anchor and records its extent. Full-height sections
// are padded to the viewport so they can reach the activation line.
func (b *docBuilder) section(id scroll.SectionID, fullHeight bool, render func()) {
	top := len(b.lines)
	render()
	if fullHeight {
		for len(b.lines)-top < b.v.height {
			b.lines = append(b.lines, "")
		}
	}
	if len(b.lines) == top {
		b.lines = append(b.lines, "")
	}
	b.doc.layout[id] = scroll.Rect{Top: top, Bottom: len(b.lines) - 1}
}

// add appends a rendered block and returns the document lines it occupies.
func (b *docBuilder) add(block string) (top, bottom int) {
	top = len(b.lines)
	for _, line := range strings.Split(block, "\n") {
		b.lines = append(b.lines, ansi.Truncate(line, b.v.width, ""))
	}
	return top, len(b.lines) - 1
}

func (b *docBuilder) blank() {
	b.lines = append(b.lines, "")
}

func (b *docBuilder) hit(block string, left int, action hitAction, index int) {
	top, bottom := b.add(block)
	b.doc.hits = append(b.doc.hits, hitbox{
		top: top, bottom: bottom,
		left: left, right: left + ansi.StringWidth(firstLine(block)),
		action: action, index: index,
	})
}

func (b *docBuilder) heading(title string) {
	b.blank()
	b.add(b.v.theme.Heading.Render(title))
	b.add(b.v.theme.Dim.Render(strings.Repeat("─", min(b.v.width, ansi.StringWidth(title)+4))))
	b.blank()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// rowItem is one block in a horizontal row.
type rowItem struct {
	block  string
	action hitAction
	index  int
	click  bool
}

// row lays items out left to right, wrapping to a new row when the column
// is full, and records a hitbox per clickable item.
func (b *docBuilder) row(items []rowItem, gap int) {
	var (
		line  []string
		spans []rowItem
		lefts []int
		x     int
	)
	flush := func() {
		if len(line) == 0 {
			return
		}
		top, bottom := b.add(lipgloss.JoinHorizontal(lipgloss.Top, line...))
		for i, it := range spans {
			if !it.click {
				continue
			}
			b.doc.hits = append(b.doc.hits, hitbox{
				top: top, bottom: bottom,
				left: lefts[i], right: lefts[i] + lipgloss.Width(it.block),
				action: it.action, index: it.index,
			})
		}
		line, spans, lefts, x = nil, nil, nil, 0
	}
	spacer := strings.Repeat(" ", gap)
	for _, it := range items {
		w := lipgloss.Width(it.block)
		if len(line) > 0 && x+gap+w > b.v.width {
			flush()
		}
		if len(line) > 0 {
			line = append(line, spacer)
			x += gap
		}
		line = append(line, it.block)
		spans = append(spans, it)
		lefts = append(lefts, x)
		x += w
	}
	flush()
}
