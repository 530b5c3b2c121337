package tui

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/folio/internal/config"
	"github.com/akyairhashvil/folio/internal/content"
	"github.com/akyairhashvil/folio/internal/util"
)

// RenderPlain writes the whole page once, for output that is not a terminal.
// The typed line shows the first role in full and sections are not padded.
func RenderPlain(w io.Writer, p content.Profile, theme string, width int) error {
	if len(p.Roles) == 0 {
		return fmt.Errorf("render: %w", content.ErrNoRoles)
	}
	width = util.Clamp(width, config.MinContentWidth, config.MaxContentWidth)
	form := newContactForm(width)
	doc := renderDocument(docView{
		profile:   p,
		theme:     ResolveTheme(theme),
		width:     width,
		typed:     p.Roles[0],
		hoverCard: -1,
		focusCard: -1,
		form:      &form,
	})
	_, err := io.WriteString(w, doc.content()+"\n")
	return err
}
