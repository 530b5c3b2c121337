package tui

import (
	"strings"

	"github.com/akyairhashvil/folio/internal/config"
	"github.com/akyairhashvil/folio/internal/content"
	"github.com/akyairhashvil/folio/internal/util"
)

const typingCursor = "|"

func (b *docBuilder) hero() {
	t := b.v.theme
	p := b.v.profile

	b.blank()
	b.add(t.Body.Render("Hi, I'm ") + t.Title.Render(p.Name))
	b.add(util.Truncate(t.Typed.Render(b.v.typed)+t.Dim.Render(typingCursor), b.v.width))
	b.blank()
	for _, line := range util.Wrap(p.Headline, b.v.width) {
		b.add(t.Body.Render(line))
	}
	for _, line := range util.Wrap(p.Bio, b.v.width) {
		b.add(t.Dim.Render(line))
	}
	b.blank()

	if len(p.Skills) > 0 {
		badges := make([]rowItem, 0, len(p.Skills))
		for _, s := range p.Skills {
			badges = append(badges, rowItem{block: t.Badge.Render(skillBadge(t, s))})
		}
		b.row(badges, 1)
		b.blank()
	}

	b.row([]rowItem{
		{block: t.Button.Render("View My Work"), action: hitViewWork, click: true},
		{block: t.ButtonDim.Render("Contact Me"), action: hitContactMe, click: true},
	}, 2)
}

// skillBadge is "icon name ●●●○○".
func skillBadge(t Theme, s content.Skill) string {
	level := util.Clamp(s.Level, 0, config.SkillLevels)
	dots := t.DotOn.Render(strings.Repeat("●", level)) +
		t.DotOff.Render(strings.Repeat("○", config.SkillLevels-level))
	label := s.Name
	if s.Icon != "" {
		label = s.Icon + " " + label
	}
	return label + " " + dots
}
