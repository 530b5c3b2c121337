package tui

import (
	"github.com/akyairhashvil/folio/internal/scroll"
	"github.com/akyairhashvil/folio/internal/util"
)

func (b *docBuilder) contact() {
	t := b.v.theme
	p := b.v.profile
	f := b.v.form

	b.heading(scroll.Contact.Label())
	for _, line := range util.Wrap(p.ContactNote, b.v.width) {
		b.add(t.Dim.Render(line))
	}
	b.blank()

	if f != nil {
		fieldWidth := b.v.width - 2
		b.field("Name", f.name.View(), fieldWidth, f.active && f.focus == fieldName, fieldName)
		b.field("Email", f.email.View(), fieldWidth, f.active && f.focus == fieldEmail, fieldEmail)
		b.field("Message", f.message.View(), fieldWidth, f.active && f.focus == fieldMessage, fieldMessage)
		send := t.ButtonDim.Render("Send Message")
		if f.active && f.focus == fieldSend {
			send = t.Button.Render("Send Message")
		}
		b.row([]rowItem{{block: send, action: hitSend, click: true}}, 0)
		b.blank()
	}

	if len(p.Socials) > 0 {
		b.add(t.Title.Render("Find me on"))
		items := make([]rowItem, 0, len(p.Socials))
		for i, s := range p.Socials {
			items = append(items, rowItem{block: t.Link.Render(s.Label), action: hitSocial, index: i, click: true})
		}
		b.row(items, 3)
	}
}

func (b *docBuilder) field(label, view string, width int, focused bool, idx formField) {
	t := b.v.theme
	b.add(t.Dim.Render(label))
	style := t.Input
	if focused {
		style = t.InputFocus
	}
	b.hit(style.Width(width).Render(view), 0, hitField, int(idx))
}
