// Package composer provides the two-field form used to add a quote.
package composer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quickquotes/internal/ui"
	"github.com/llehouerou/quickquotes/internal/ui/styles"
)

// Field identifies one of the form inputs.
type Field int

const (
	FieldQuotation Field = iota
	FieldAuthor
	fieldCount
)

const (
	quotationCharLimit = 1000
	authorCharLimit    = 200

	addedText = "Quote added!"
)

// Model is the add-quote form. It only edits text; the app decides when a
// submission is allowed and what happens to it.
type Model struct {
	ui.Base
	inputs    [fieldCount]textinput.Model
	field     Field
	canSubmit bool
	locked    bool // set between a submission and the draft reset
	showAdded bool
}

// New creates an empty, unfocused form.
func New() Model {
	quotation := textinput.New()
	quotation.Prompt = ""
	quotation.Placeholder = "Stay hungry, stay foolish."
	quotation.CharLimit = quotationCharLimit

	author := textinput.New()
	author.Prompt = ""
	author.Placeholder = "Who said it?"
	author.CharLimit = authorCharLimit

	return Model{inputs: [fieldCount]textinput.Model{quotation, author}}
}

// SetSize sets the form dimensions and resizes the inputs.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	w := ui.ContentWidth(width)
	for i := range m.inputs {
		m.inputs[i].Width = w - 1
	}
}

// Focus gives keyboard focus to the current field.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	return m.inputs[m.field].Focus()
}

// Blur removes keyboard focus from the form.
func (m *Model) Blur() {
	m.SetFocused(false)
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// Field returns the field that receives typed text.
func (m Model) Field() Field {
	return m.field
}

// NextField moves focus to the next field, wrapping around.
func (m *Model) NextField() tea.Cmd {
	return m.setField((m.field + 1) % fieldCount)
}

// PrevField moves focus to the previous field, wrapping around.
func (m *Model) PrevField() tea.Cmd {
	return m.setField((m.field + fieldCount - 1) % fieldCount)
}

func (m *Model) setField(f Field) tea.Cmd {
	m.inputs[m.field].Blur()
	m.field = f
	if !m.IsFocused() {
		return nil
	}
	return m.inputs[m.field].Focus()
}

// Values returns the raw text of both fields.
func (m Model) Values() (quotation, author string) {
	return m.inputs[FieldQuotation].Value(), m.inputs[FieldAuthor].Value()
}

// SetCanSubmit enables or disables the add button.
func (m *Model) SetCanSubmit(ok bool) {
	m.canSubmit = ok
}

// CanSubmit reports whether the add button is enabled.
func (m Model) CanSubmit() bool {
	return m.canSubmit && !m.locked
}

// Locked reports whether the form is waiting for its draft to be cleared.
func (m Model) Locked() bool {
	return m.locked
}

// MarkAdded shows the confirmation and locks the form until ClearDraft.
func (m *Model) MarkAdded() {
	m.locked = true
	m.showAdded = true
}

// ClearDraft empties both fields, unlocks the form and returns to the first field.
func (m *Model) ClearDraft() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.locked = false
	return m.setField(FieldQuotation)
}

// HideAdded hides the confirmation message.
func (m *Model) HideAdded() {
	m.showAdded = false
}

// AddedVisible reports whether the confirmation message is shown.
func (m Model) AddedVisible() bool {
	return m.showAdded
}

// Update forwards input to the focused field. Locked or unfocused forms ignore it.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.locked || !m.IsFocused() {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return cmd
}

// View renders the form.
func (m Model) View() string {
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Add a quote"))
	b.WriteString("\n\n")
	b.WriteString(m.label("Quote", FieldQuotation))
	b.WriteString("\n")
	b.WriteString(m.inputs[FieldQuotation].View())
	b.WriteString("\n\n")
	b.WriteString(m.label("Author", FieldAuthor))
	b.WriteString("\n")
	b.WriteString(m.inputs[FieldAuthor].View())
	b.WriteString("\n\n")

	button := "[ Add quote ]"
	if m.CanSubmit() {
		b.WriteString(s.Heading.Render(button))
	} else {
		b.WriteString(s.Disabled.Render(button))
	}
	if m.showAdded {
		b.WriteString("  ")
		b.WriteString(s.Success.Render(addedText))
	}
	return b.String()
}

func (m Model) label(text string, f Field) string {
	s := styles.T().S()
	if m.IsFocused() && m.field == f {
		return s.Heading.Render("› " + text)
	}
	return s.Muted.Render("  " + text)
}
