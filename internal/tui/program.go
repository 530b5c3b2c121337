package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/akyairhashvil/folio/internal/content"
	"github.com/akyairhashvil/folio/internal/scroll"
)

// Run shows the portfolio until the user quits or ctx is cancelled.
// Callers should point logrus away from the terminal first.
func Run(ctx context.Context, p content.Profile, opts Options, extra ...tea.ProgramOption) error {
	m, err := NewModel(p, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	cancel := m.Tracker().Subscribe(func(id scroll.SectionID) {
		logrus.WithField("section", id).Debug("active section changed")
	})
	defer cancel()

	progOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	}, extra...)
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
