package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/folio/internal/content"
	"github.com/akyairhashvil/folio/internal/scroll"
	"github.com/akyairhashvil/folio/internal/util"
)

func (b *docBuilder) projects() {
	b.heading(scroll.Projects.Label())
	for i, p := range b.v.profile.Projects {
		hot := i == b.v.hoverCard || i == b.v.focusCard
		b.hit(b.projectCard(p, hot), 0, hitCard, i)
		b.blank()
	}
}

// projectCard renders one gallery card. The link line is always present so
// hovering never shifts the layout; only its styling changes.
func (b *docBuilder) projectCard(p content.Project, hot bool) string {
	t := b.v.theme
	inner := b.v.width - 6
	if inner < 1 {
		inner = 1
	}
	lines := []string{t.Title.Render(util.Truncate(p.Title, inner))}
	for _, line := range util.Wrap(p.Description, inner) {
		lines = append(lines, t.Body.Render(line))
	}
	lines = append(lines, "")
	lines = append(lines, chipRows(t, p.Tools, inner)...)
	lines = append(lines, "")
	lines = append(lines, projectLink(t, p, hot, inner))

	style := t.Card
	if hot {
		style = t.CardHover
	}
	return style.Width(b.v.width - 2).Render(strings.Join(lines, "\n"))
}

func projectLink(t Theme, p content.Project, hot bool, width int) string {
	label := "↗ View Project"
	if !hot {
		return t.Dim.Render(label)
	}
	if !p.HasLink() {
		return t.Link.Render(label) + t.Dim.Render("  (no public link)")
	}
	return util.Truncate(t.Link.Render(label)+"  "+t.Dim.Render(p.Link), width)
}

// chipRows wraps tool chips into rows no wider than width.
func chipRows(t Theme, tools []string, width int) []string {
	var (
		rows []string
		cur  string
		w    int
	)
	for _, tool := range tools {
		chip := t.Chip.Render(tool)
		cw := ansi.StringWidth(chip)
		if cur != "" && w+1+cw > width {
			rows = append(rows, cur)
			cur, w = "", 0
		}
		if cur != "" {
			cur += " "
			w++
		}
		cur += chip
		w += cw
	}
	if cur != "" {
		rows = append(rows, cur)
	}
	return rows
}
