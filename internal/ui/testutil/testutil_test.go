package testutil

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "hello world", NormalizeWhitespace("  hello \t\n  world "))
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 3, MeasureWidth("\x1b[31mred\x1b[0m"))
	assert.Equal(t, 4, MeasureWidth("日本"))
}

func TestFindLine(t *testing.T) {
	output := "first line\nsecond line\nthird line"

	assert.Equal(t, "second line", FindLine(output, "second"))
	assert.Empty(t, FindLine(output, "missing"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "three"}, SplitLines("one\ntwo\nthree\n\n"))
}

type counterMsg struct{}

// counter counts key presses and records typed runes.
type counter struct {
	keys  int
	typed string
	ticks int
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return counterMsg{} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case counterMsg:
		c.ticks++
	case tea.KeyMsg:
		c.keys++
		if msg.Type == tea.KeyRunes {
			c.typed += string(msg.Runes)
		}
		if msg.Type == tea.KeyEnter {
			return c, tea.Batch(
				func() tea.Msg { return counterMsg{} },
				func() tea.Msg { return counterMsg{} },
			)
		}
	}
	return c, nil
}

func (c counter) View() string {
	return "\x1b[1m" + strconv.Itoa(c.keys) + "\x1b[0m"
}

func TestHarness(t *testing.T) {
	h := NewHarness(counter{})
	require.Len(t, h.Commands(), 1, "init command captured")

	h.Run(h.Commands()[0])
	h.Type("abc")
	h.SendKey("tab")

	c, ok := h.Model().(counter)
	require.True(t, ok)
	assert.Equal(t, 1, c.ticks)
	assert.Equal(t, 4, c.keys)
	assert.Equal(t, "abc", c.typed)
	assert.Equal(t, "4", h.View())
}

func TestHarness_RunExpandsBatches(t *testing.T) {
	h := NewHarness(counter{})
	h.ClearCommands()

	msgs := h.Run(h.SendKey("enter"))

	assert.Len(t, msgs, 2)
	c, ok := h.Model().(counter)
	require.True(t, ok)
	assert.Equal(t, 2, c.ticks)
}

func TestExec_Nil(t *testing.T) {
	assert.Nil(t, Exec(nil))
}
