package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for theme colors that are not "#rrggbb".
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Title renders text in bold, shading each grapheme from the theme's
// primary color to its secondary color.
func Title(text string) string {
	t := T()
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	shades := titleShades(len(clusters), t.Primary, t.Secondary)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(shades[i]).Render(cluster))
	}
	return b.String()
}

// titleShades blends n colors from start to end in HCL space.
func titleShades(n int, start, end lipgloss.Color) []lipgloss.Color {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{start}
	}

	c1, c2 := hexColor(start), hexColor(end)
	shades := make([]lipgloss.Color, n)
	for i := range n {
		shades[i] = lipgloss.Color(c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return shades
}

func hexColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
