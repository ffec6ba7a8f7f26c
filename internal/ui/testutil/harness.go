package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing, providing helpers to simulate
// user interactions and inspect state.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness creates a test harness and captures the model's init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion when needed.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content with ANSI codes stripped.
func (h *Harness) View() string {
	return StripANSI(h.model.View())
}

// SetSize sends a window size message.
func (h *Harness) SetSize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// SendMsg sends any message to the model and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates a key press. Single characters are sent as runes,
// anything else is looked up as a named key ("enter", "tab", "ctrl+c").
func (h *Harness) SendKey(key string) tea.Cmd {
	if t, ok := keyTypes[key]; ok {
		return h.SendSpecialKey(t)
	}
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Type sends text one rune at a time.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Commands returns all commands captured so far.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the captured commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// Exec runs cmd and returns the messages it produced, expanding batches.
// Commands that wait on timers block for their full duration.
func Exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, Exec(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// Run executes cmd and feeds every resulting message back into the model.
// It returns the messages that were delivered.
func (h *Harness) Run(cmd tea.Cmd) []tea.Msg {
	msgs := Exec(cmd)
	for _, msg := range msgs {
		h.SendMsg(msg)
	}
	return msgs
}

var keyTypes = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"space":     tea.KeySpace,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+z":    tea.KeyCtrlZ,
}
