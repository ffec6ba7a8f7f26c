// internal/app/commands.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	clearDraftDelay = 500 * time.Millisecond
	hideAddedDelay  = 1000 * time.Millisecond
)

// loadCmd loads the collection in the background.
func (m Model) loadCmd() tea.Cmd {
	coll := m.coll
	return func() tea.Msg {
		return LoadedMsg{Err: coll.Load(context.Background())}
	}
}

// saveCmd saves the collection, bounded by the configured timeout.
func (m Model) saveCmd() tea.Cmd {
	coll := m.coll
	timeout := m.saveTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return SavedMsg{Err: coll.Save(ctx)}
	}
}

// exitCmd returns the command that performs action, or nil for exitNone.
func exitCmd(action exitAction) tea.Cmd {
	switch action {
	case exitQuit:
		return tea.Quit
	case exitSuspend:
		return tea.Suspend
	case exitNone:
	}
	return nil
}

// ClearDraftCmd returns a command that sends ClearDraftMsg after 500ms.
func ClearDraftCmd(version int) tea.Cmd {
	return tea.Tick(clearDraftDelay, func(_ time.Time) tea.Msg {
		return ClearDraftMsg{Version: version}
	})
}

// HideAddedCmd returns a command that sends HideAddedMsg after 1s.
func HideAddedCmd(version int) tea.Cmd {
	return tea.Tick(hideAddedDelay, func(_ time.Time) tea.Msg {
		return HideAddedMsg{Version: version}
	})
}
