package keymap

// Binding maps keys to an action and documents it for help generation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "browse" or "compose"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "Save and quit", ContextGlobal},
	{ActionSuspend, []string{"ctrl+z"}, "Save and suspend", ContextGlobal},

	// Browse
	{ActionQuit, []string{"q", "esc"}, "Save and quit", ContextBrowse},
	{ActionRandomQuote, []string{"r", " "}, "Random quote", ContextBrowse},
	{ActionNewQuote, []string{"a", "n", "tab"}, "New quote", ContextBrowse},
	{ActionHelp, []string{"?"}, "Toggle help", ContextBrowse},

	// Compose
	{ActionNextField, []string{"tab", "down"}, "Next field", ContextCompose},
	{ActionPrevField, []string{"shift+tab", "up"}, "Previous field", ContextCompose},
	{ActionSubmit, []string{"enter", "ctrl+s"}, "Add quote", ContextCompose},
	{ActionCancel, []string{"esc"}, "Back to quotes", ContextCompose},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContext returns the global bindings followed by those of context.
func ForContext(context string) []Binding {
	return append(ByContext(ContextGlobal), ByContext(context)...)
}
