// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionSuspend Action = "suspend"
	ActionHelp    Action = "help"

	// Browse actions
	ActionRandomQuote Action = "random_quote"
	ActionNewQuote    Action = "new_quote" // focus the compose form

	// Compose actions
	ActionNextField Action = "next_field"
	ActionPrevField Action = "prev_field"
	ActionSubmit    Action = "submit"
	ActionCancel    Action = "cancel" // back to browsing, keeps the draft
)

// Contexts group bindings by the part of the UI that has focus.
const (
	ContextGlobal  = "global"
	ContextBrowse  = "browse"
	ContextCompose = "compose"
)
