// internal/app/update.go
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quickquotes/internal/errmsg"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case LoadedMsg:
		return m.handleLoaded(msg)

	case SavedMsg:
		return m.handleSaved(msg)

	case ClearDraftMsg:
		return m.handleClearDraft(msg)

	case HideAddedMsg:
		if msg.Version == m.addedVersion {
			m.Composer.HideAdded()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blinks and other input internals.
	if m.Focus == FocusCompose {
		cmd := m.Composer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.QuoteView.SetSize(msg.Width, msg.Height)
	m.Composer.SetSize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleLoaded(msg LoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		slog.Error("initial load failed", "err", msg.Err)
		m.setStatus(errmsg.Format(errmsg.OpQuotesLoad, msg.Err), true)
	}
	m.refreshQuote()
	return m, nil
}

func (m Model) handleSaved(msg SavedMsg) (tea.Model, tea.Cmd) {
	m.saveErr = msg.Err
	if msg.Err != nil {
		slog.Error("save failed", "path", m.coll.StorePath(), "err", msg.Err)
		m.setStatus(errmsg.Format(errmsg.OpQuotesSave, msg.Err), true)
	} else {
		slog.Debug("saved quotes", "path", m.coll.StorePath(), "count", m.coll.Len())
	}

	action := m.pendingExit
	m.pendingExit = exitNone
	return m, exitCmd(action)
}

func (m Model) handleClearDraft(msg ClearDraftMsg) (tea.Model, tea.Cmd) {
	if msg.Version != m.addedVersion {
		return m, nil
	}
	m.coll.ResetEditing()
	cmd := m.Composer.ClearDraft()
	m.Composer.SetCanSubmit(false)
	return m, tea.Batch(cmd, HideAddedCmd(msg.Version))
}
