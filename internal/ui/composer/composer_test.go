package composer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/quickquotes/internal/ui/testutil"
)

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func focused() Model {
	m := New()
	m.SetSize(60, 10)
	m.Focus()
	return m
}

func TestNew_Empty(t *testing.T) {
	m := New()

	q, a := m.Values()
	assert.Empty(t, q)
	assert.Empty(t, a)
	assert.Equal(t, FieldQuotation, m.Field())
	assert.False(t, m.IsFocused())
	assert.False(t, m.CanSubmit())
}

func TestUpdate_TypesIntoFocusedField(t *testing.T) {
	m := focused()

	typeText(&m, "Carpe diem.")
	m.NextField()
	typeText(&m, "Horace")

	q, a := m.Values()
	assert.Equal(t, "Carpe diem.", q)
	assert.Equal(t, "Horace", a)
}

func TestUpdate_IgnoredWhenUnfocused(t *testing.T) {
	m := New()

	typeText(&m, "ignored")

	q, _ := m.Values()
	assert.Empty(t, q)
}

func TestFieldNavigation_Wraps(t *testing.T) {
	m := focused()

	m.NextField()
	assert.Equal(t, FieldAuthor, m.Field())
	m.NextField()
	assert.Equal(t, FieldQuotation, m.Field())
	m.PrevField()
	assert.Equal(t, FieldAuthor, m.Field())
}

func TestMarkAdded_LocksUntilCleared(t *testing.T) {
	m := focused()
	typeText(&m, "Stay hungry.")
	m.SetCanSubmit(true)
	require.True(t, m.CanSubmit())

	m.MarkAdded()

	assert.False(t, m.CanSubmit(), "submit is disabled while the confirmation shows")
	assert.True(t, m.Locked())
	assert.True(t, m.AddedVisible())
	typeText(&m, "!!")
	q, _ := m.Values()
	assert.Equal(t, "Stay hungry.", q, "locked form ignores typing")

	m.NextField()
	m.ClearDraft()

	q, a := m.Values()
	assert.Empty(t, q)
	assert.Empty(t, a)
	assert.False(t, m.Locked())
	assert.Equal(t, FieldQuotation, m.Field())
	assert.True(t, m.AddedVisible(), "confirmation outlives the draft")

	m.HideAdded()
	assert.False(t, m.AddedVisible())
}

func TestView(t *testing.T) {
	m := focused()

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Add a quote")
	assert.Contains(t, view, "› Quote")
	assert.Contains(t, view, "Author")
	assert.Contains(t, view, "[ Add quote ]")
	assert.NotContains(t, view, "Quote added!")

	m.MarkAdded()
	assert.Contains(t, testutil.StripANSI(m.View()), "Quote added!")
}
