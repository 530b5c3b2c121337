package tui

import (
	"strings"

	"github.com/akyairhashvil/folio/internal/scroll"
	"github.com/akyairhashvil/folio/internal/util"
)

func (b *docBuilder) cv() {
	t := b.v.theme
	p := b.v.profile

	b.heading(scroll.CV.Label())
	if len(p.Education) > 0 {
		b.add(t.Title.Render("Education"))
		for _, e := range p.Education {
			b.card(e.Degree, e.Institution, e.Detail)
		}
		b.blank()
	}
	if len(p.Experience) > 0 {
		b.add(t.Title.Render("Experience"))
		for _, e := range p.Experience {
			b.card(e.Role, e.Company, e.Summary)
		}
		b.blank()
	}
	b.row([]rowItem{
		{block: t.Button.Render("Download Full Resume"), action: hitResume, click: true},
	}, 0)
}

// card draws a bordered entry with a bold title and optional detail lines.
func (b *docBuilder) card(title string, details ...string) {
	t := b.v.theme
	inner := b.v.width - 6
	if inner < 1 {
		inner = 1
	}
	lines := []string{t.Body.Bold(true).Render(util.Truncate(title, inner))}
	for _, d := range details {
		for _, line := range util.Wrap(d, inner) {
			lines = append(lines, t.Dim.Render(line))
		}
	}
	b.add(t.Card.Width(b.v.width - 2).Render(strings.Join(lines, "\n")))
}
