package tui

import "github.com/akyairhashvil/folio/internal/typing"

// --- Messages ---

// typingMsg carries the latest animator state into the update loop.
type typingMsg typing.State

// scrollFrameMsg advances the smooth scroll identified by id.
type scrollFrameMsg struct {
	id int
}

// exportDoneMsg reports the outcome of a résumé export.
type exportDoneMsg struct {
	path string
	err  error
}
