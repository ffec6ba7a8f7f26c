// Package quoteview renders the currently displayed quote.
package quoteview

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/quickquotes/internal/quote"
	"github.com/llehouerou/quickquotes/internal/ui"
	"github.com/llehouerou/quickquotes/internal/ui/render"
	"github.com/llehouerou/quickquotes/internal/ui/styles"
)

const (
	loadingText = "Loading ..."
	waitText    = "please wait..."
	emptyText   = "No quotes in your collection yet."
)

// Model shows one quote with its position in the collection.
type Model struct {
	ui.Base
	loaded bool
	quote  quote.Quote
	index  int
	total  int
}

// New creates a quote view in the loading state.
func New() Model {
	return Model{}
}

// SetQuote updates what is shown. index is zero-based.
func (m *Model) SetQuote(q quote.Quote, index, total int) {
	m.loaded = true
	m.quote = q
	m.index = index
	m.total = total
}

// Loaded reports whether a quote (or the empty notice) is being shown.
func (m Model) Loaded() bool {
	return m.loaded
}

// Heading returns "Quote #i of N", or empty when there is nothing to number.
func (m Model) Heading() string {
	if !m.loaded || m.total == 0 {
		return ""
	}
	return fmt.Sprintf("Quote #%s of %s",
		humanize.Comma(int64(m.index+1)), humanize.Comma(int64(m.total)))
}

// View renders the quote panel content.
func (m Model) View() string {
	s := styles.T().S()
	width := ui.ContentWidth(m.Width())

	if !m.loaded {
		return s.Quotation.Render(loadingText) + "\n" + s.Muted.Render(waitText)
	}
	if m.total == 0 {
		return s.Muted.Render(emptyText)
	}

	var b strings.Builder
	b.WriteString(s.Heading.Render(m.Heading()))
	b.WriteString("\n\n")
	b.WriteString(s.Quotation.Render(render.Wrap(m.quote.Quotation, width)))
	b.WriteString("\n\n")
	b.WriteString(s.Author.Render(render.Truncate("— "+m.quote.Author, width)))
	return b.String()
}
