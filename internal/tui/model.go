package tui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/folio/internal/clock"
	"github.com/akyairhashvil/folio/internal/config"
	"github.com/akyairhashvil/folio/internal/content"
	"github.com/akyairhashvil/folio/internal/resume"
	"github.com/akyairhashvil/folio/internal/scroll"
	"github.com/akyairhashvil/folio/internal/typing"
	"github.com/akyairhashvil/folio/internal/util"
)

// gutter separates the sidebar from the document column.
const gutter = 2

// ExportFunc writes the résumé PDF into dir and returns its path.
type ExportFunc func(p content.Profile, dir string) (string, error)

type Options struct {
	Theme     string
	NoAnim    bool
	ResumeDir string
	// Scheduler drives the typing animation; nil means the real clock.
	Scheduler clock.Scheduler
	Export    ExportFunc
}

// session holds the long-lived pieces shared by every copy of the Model.
type session struct {
	tracker  *scroll.Tracker
	animator *typing.Animator
	bridge   *typingBridge
	once     sync.Once
}

func (s *session) close() {
	s.once.Do(func() {
		s.animator.Stop()
		s.bridge.close()
		s.tracker.Close()
	})
}

// Model is the root bubbletea model: a navigation rail beside a scrolling
// one-page document.
type Model struct {
	profile content.Profile
	session *session
	keys    *HandlerRegistry
	help    help.Model
	theme   Theme

	viewport     viewport.Model
	doc          document
	anim         scrollAnim
	form         contactForm
	typed        typing.State
	contentWidth int

	focusCard int
	hoverCard int
	hoverNav  string
	modal     ModalState

	status    string
	statusErr bool

	noAnim    bool
	resumeDir string
	export    ExportFunc

	width, height int
	ready         bool
	quitting      bool
}

func NewModel(p content.Profile, opts Options) (Model, error) {
	sched := opts.Scheduler
	if sched == nil {
		sched = clock.Real()
	}
	animator, err := typing.NewAnimator(sched, p.Roles)
	if err != nil {
		return Model{}, fmt.Errorf("typing animator: %w", err)
	}
	export := opts.Export
	if export == nil {
		export = resume.Export
	}

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false

	m := Model{
		profile: p,
		session: &session{
			tracker:  scroll.NewTracker(scroll.WithActivationLine(config.ActivationLineRows)),
			animator: animator,
			bridge:   newTypingBridge(animator),
		},
		keys:      defaultRegistry(),
		help:      help.New(),
		theme:     ResolveTheme(opts.Theme),
		viewport:  vp,
		anim:      newScrollAnim(),
		form:      newContactForm(config.MinContentWidth),
		typed:     animator.State(),
		focusCard: -1,
		hoverCard: -1,
		noAnim:    opts.NoAnim,
		resumeDir: opts.ResumeDir,
		export:    export,
	}
	if m.noAnim {
		m.typed = typing.State{Text: p.Roles[0], Mode: typing.HoldingFull}
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	if m.noAnim {
		return nil
	}
	m.session.animator.Start()
	return m.session.bridge.listen()
}

// Tracker exposes the scroll tracker, mainly so callers can subscribe.
func (m Model) Tracker() *scroll.Tracker { return m.session.tracker }

// ActiveSection is the section the sidebar highlights.
func (m Model) ActiveSection() scroll.SectionID { return m.session.tracker.Active() }

// Typed is the current typing animation state.
func (m Model) Typed() typing.State { return m.typed }

// Close stops the animation and the tracker. It is safe to call repeatedly.
func (m Model) Close() { m.session.close() }

func (m Model) mode() inputMode {
	switch {
	case m.modal != nil:
		return modeModal
	case m.form.active:
		return modeForm
	default:
		return modeBrowse
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	avail := w - sidebarWidth(w) - gutter
	m.contentWidth = util.Clamp(avail, config.MinContentWidth, config.MaxContentWidth)
	m.viewport.Width = m.contentWidth
	m.viewport.Height = max(1, h-m.footerHeight())
	m.form.setWidth(m.contentWidth)
	m.ready = true
	m.refresh()
	m.observe()
}

// refresh re-renders the document, keeping the scroll offset.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.doc = renderDocument(m.docView())
	off := m.viewport.YOffset
	m.viewport.SetContent(m.doc.content())
	m.viewport.SetYOffset(off)
}

func (m *Model) docView() docView {
	return docView{
		profile:   m.profile,
		theme:     m.theme,
		width:     m.contentWidth,
		height:    m.viewport.Height,
		typed:     m.typed.Text,
		hoverCard: m.hoverCard,
		focusCard: m.focusCard,
		form:      &m.form,
	}
}

// observe reports the current anchor boxes to the tracker.
func (m *Model) observe() {
	m.session.tracker.Observe(m.doc.layout.At(m.viewport.YOffset))
}

func (m *Model) setOffset(y int) {
	m.viewport.SetYOffset(y)
	m.observe()
}

func (m Model) maxOffset() int {
	return max(0, m.viewport.TotalLineCount()-m.viewport.Height)
}

// scrollBy moves the viewport by delta rows, abandoning any smooth scroll.
func (m *Model) scrollBy(delta int) {
	m.anim.cancel()
	m.setOffset(util.Clamp(m.viewport.YOffset+delta, 0, m.maxOffset()))
}

// ensureVisible scrolls the least amount needed to show rows top..bottom.
func (m *Model) ensureVisible(top, bottom int) {
	off := m.viewport.YOffset
	switch {
	case top < off:
		off = top
	case bottom >= off+m.viewport.Height:
		off = bottom - m.viewport.Height + 1
	default:
		return
	}
	m.anim.cancel()
	m.setOffset(util.Clamp(off, 0, m.maxOffset()))
}

// jumpTo scrolls to the top of a section, smoothly unless animation is off.
func (m Model) jumpTo(id scroll.SectionID) (Model, tea.Cmd) {
	target, ok := m.doc.layout.Offset(id)
	if !ok {
		return m, nil
	}
	target = util.Clamp(target, 0, m.maxOffset())
	if m.noAnim || target == m.viewport.YOffset {
		m.anim.cancel()
		m.setOffset(target)
		return m, nil
	}
	return m, m.anim.start(m.viewport.YOffset, target)
}

func (m *Model) setStatus(msg string) {
	m.status, m.statusErr = msg, false
}

func (m *Model) setStatusError(msg string) {
	m.status, m.statusErr = msg, true
}
