// internal/app/view.go
package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/quickquotes/internal/keymap"
	"github.com/llehouerou/quickquotes/internal/ui"
	"github.com/llehouerou/quickquotes/internal/ui/helpbindings"
	"github.com/llehouerou/quickquotes/internal/ui/render"
	"github.com/llehouerou/quickquotes/internal/ui/styles"
)

const appTitle = "QuickQuotes"

// View renders the application UI.
func (m Model) View() string {
	s := styles.T().S()
	panelWidth := ui.ContentWidth(m.Width) + 2

	title := styles.Title(appTitle)

	var body string
	if m.ShowHelp {
		body = panel(false, panelWidth, helpbindings.Full())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			panel(m.Focus == FocusQuote, panelWidth, m.QuoteView.View()),
			panel(m.Focus == FocusCompose, panelWidth, m.Composer.View()),
		)
	}

	helpContext := keymap.ContextBrowse
	if m.Focus == FocusCompose {
		helpContext = keymap.ContextCompose
	}

	lineWidth := ui.ContentWidth(m.Width) + ui.BorderWidth
	count := ""
	if m.coll.IsLoaded() {
		count = s.Muted.Render(humanize.Comma(int64(m.coll.Len())) + " " + plural(m.coll.Len(), "quote"))
	}
	status := ""
	if m.StatusMsg != "" {
		style := s.Success
		if m.StatusIsErr {
			style = s.Error
		}
		status = style.Render(render.Truncate(m.StatusMsg, lineWidth-lipgloss.Width(count)-1))
	}
	status = render.Row(status, count, lineWidth)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		status,
		helpbindings.Line(helpContext),
	)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func panel(focused bool, width int, content string) string {
	return styles.PanelStyle(focused).
		Width(width).
		Padding(0, 1).
		Render(content)
}
