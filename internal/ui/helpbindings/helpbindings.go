// Package helpbindings renders key binding help from the keymap table.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/quickquotes/internal/keymap"
	"github.com/llehouerou/quickquotes/internal/ui/render"
	"github.com/llehouerou/quickquotes/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextBrowse,
	keymap.ContextCompose,
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	keymap.ContextGlobal:  "Global",
	keymap.ContextBrowse:  "Quotes",
	keymap.ContextCompose: "Add a quote",
}

// Full renders every binding grouped by context.
func Full() string {
	s := styles.T().S()
	keyStyle := lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)

	var bindings []keymap.Binding
	for _, ctx := range categoryOrder {
		bindings = append(bindings, keymap.ByContext(ctx)...)
	}

	maxKeyWidth := 0
	for _, b := range bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyList(b.Keys)))
	}

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Help"))
	sb.WriteString("\n")

	currentContext := ""
	for _, b := range bindings {
		if b.Context != currentContext {
			sb.WriteString("\n")
			sb.WriteString(s.Heading.Render(categoryLabels[b.Context]))
			sb.WriteString("\n")
			sb.WriteString(s.Subtle.Render(render.Separator(maxKeyWidth + 15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		sb.WriteString(keyStyle.Render(render.TruncateAndPad(keyList(b.Keys), maxKeyWidth)))
		sb.WriteString("  ")
		sb.WriteString(s.Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// Line renders a one-line summary of the bindings active in context.
// Each action appears once, with the first key the resolver knows for it.
func Line(context string) string {
	s := styles.T().S()
	bindings := keymap.ForContext(context)
	r := keymap.NewResolver(bindings)

	seen := make(map[keymap.Action]bool)
	var parts []string
	for _, b := range bindings {
		if seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		keys := r.KeysFor(b.Action)
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, s.Base.Render(keyLabel(keys[0]))+" "+s.Muted.Render(strings.ToLower(b.Description)))
	}
	return strings.Join(parts, s.Subtle.Render(" • "))
}

func keyList(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keyLabel(k)
	}
	return strings.Join(labels, ", ")
}

func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
