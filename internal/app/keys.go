// internal/app/keys.go
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quickquotes/internal/keymap"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Input is frozen while the exit save runs.
	if m.pendingExit != exitNone {
		return m, nil
	}
	if !m.StatusIsErr {
		m.StatusMsg = ""
	}

	key := msg.String()
	if m.Focus == FocusCompose {
		return m.handleComposeKey(key, msg)
	}
	return m.handleBrowseKey(key)
}

func (m Model) handleBrowseKey(key string) (tea.Model, tea.Cmd) {
	switch m.browseKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m.beginExit(exitQuit)
	case keymap.ActionSuspend:
		return m.beginExit(exitSuspend)
	case keymap.ActionRandomQuote:
		if m.CanRandomize() {
			m.coll.SelectRandomQuote()
			m.refreshQuote()
		}
	case keymap.ActionNewQuote:
		if m.CanCompose() {
			m.Focus = FocusCompose
			m.ShowHelp = false
			cmd := m.Composer.Focus()
			return m, cmd
		}
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
	}
	return m, nil
}

func (m Model) handleComposeKey(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.composeKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m.beginExit(exitQuit)
	case keymap.ActionSuspend:
		return m.beginExit(exitSuspend)
	case keymap.ActionNextField:
		cmd := m.Composer.NextField()
		return m, cmd
	case keymap.ActionPrevField:
		cmd := m.Composer.PrevField()
		return m, cmd
	case keymap.ActionSubmit:
		return m.handleSubmit()
	case keymap.ActionCancel:
		m.Focus = FocusQuote
		m.Composer.Blur()
		return m, nil
	}

	cmd := m.Composer.Update(msg)
	m.syncEditing()
	return m, cmd
}

// syncEditing copies the form text into the scratch quote and enables
// submission only for a valid pair.
func (m *Model) syncEditing() {
	if m.Composer.Locked() {
		return
	}
	quotation, author := m.Composer.Values()
	m.coll.SetEditing(quotation, author)
	m.Composer.SetCanSubmit(m.coll.Editing().IsValid())
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if !m.Composer.CanSubmit() {
		return m, nil
	}
	q, ok := m.coll.SubmitEditing()
	if !ok {
		return m, nil
	}
	slog.Info("quote added", "author", q.Author, "count", m.coll.Len())

	m.refreshQuote()
	m.Composer.MarkAdded()
	m.addedVersion++
	return m, ClearDraftCmd(m.addedVersion)
}

// beginExit saves the collection; the exit itself runs once SavedMsg arrives.
// Before the initial load completes the in-memory list is still empty, so the
// exit runs without saving.
func (m Model) beginExit(action exitAction) (tea.Model, tea.Cmd) {
	if !m.coll.IsLoaded() {
		slog.Info("exit before load completed, skipping save")
		return m, exitCmd(action)
	}
	m.pendingExit = action
	return m, m.saveCmd()
}
