package quoteview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/quickquotes/internal/quote"
	"github.com/llehouerou/quickquotes/internal/ui/testutil"
)

func TestView_Loading(t *testing.T) {
	m := New()
	m.SetSize(60, 10)

	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "Loading ...")
	assert.Contains(t, view, "please wait...")
	assert.Empty(t, m.Heading())
	assert.False(t, m.Loaded())
}

func TestView_Empty(t *testing.T) {
	m := New()
	m.SetSize(60, 10)
	m.SetQuote(quote.New("< no quotes in your collection >", ""), 0, 0)

	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "No quotes in your collection yet.")
	assert.NotContains(t, view, "Quote #")
	assert.True(t, m.Loaded())
}

func TestView_Quote(t *testing.T) {
	m := New()
	m.SetSize(60, 10)
	m.SetQuote(quote.New("Carpe diem.", "Horace"), 1, 2)

	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "Quote #2 of 2")
	assert.Contains(t, view, "Carpe diem.")
	assert.Contains(t, view, "— Horace")
}

func TestHeading_HumanizesLargeCounts(t *testing.T) {
	m := New()
	m.SetQuote(quote.New("x", "y"), 1233, 12345)

	assert.Equal(t, "Quote #1,234 of 12,345", m.Heading())
}

func TestView_WrapsLongQuotes(t *testing.T) {
	m := New()
	m.SetSize(30, 10)
	long := "The greatest glory in living lies not in never falling, but in rising every time we fall."
	m.SetQuote(quote.New(long, "Nelson Mandela"), 0, 1)

	view := testutil.StripANSI(m.View())

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), 26, "line %q", line)
	}
	assert.Equal(t, long, strings.Join(strings.Fields(strings.Split(view, "— ")[0])[4:], " "))
}
