// Package app contains the Bubble Tea model for the quotes TUI.
package app

// LoadedMsg is sent when the initial collection load completes.
type LoadedMsg struct {
	Err error
}

// SavedMsg is sent when a save triggered by quit or suspend completes.
type SavedMsg struct {
	Err error
}

// ClearDraftMsg is sent after a submission to empty the form.
type ClearDraftMsg struct {
	Version int
}

// HideAddedMsg is sent to hide the "Quote added!" confirmation.
type HideAddedMsg struct {
	Version int
}
