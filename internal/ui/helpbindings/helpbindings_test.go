package helpbindings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/quickquotes/internal/keymap"
	"github.com/llehouerou/quickquotes/internal/ui/testutil"
)

func TestFull_ListsEveryBinding(t *testing.T) {
	out := testutil.StripANSI(Full())

	for _, label := range []string{"Global", "Quotes", "Add a quote"} {
		assert.Contains(t, out, label)
	}
	for _, b := range keymap.Bindings {
		assert.Contains(t, out, b.Description, "binding %s", b.Action)
	}
}

func TestFull_CategoryOrder(t *testing.T) {
	out := testutil.StripANSI(Full())

	global := strings.Index(out, "Global")
	browse := strings.Index(out, "Quotes")
	compose := strings.Index(out, "Add a quote")

	assert.Less(t, global, browse)
	assert.Less(t, browse, compose)
}

func TestFull_SpaceKeyLabel(t *testing.T) {
	line := testutil.FindLine(testutil.StripANSI(Full()), "Random quote")

	assert.Contains(t, line, "r, space")
}

func TestLine(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    []string
		notWant []string
	}{
		{
			name:    "browse",
			context: keymap.ContextBrowse,
			want:    []string{"ctrl+c save and quit", "r random quote", "a new quote", "? toggle help"},
			notWant: []string{"q save and quit", "next field"},
		},
		{
			name:    "compose",
			context: keymap.ContextCompose,
			want:    []string{"tab next field", "enter add quote", "esc back to quotes"},
			notWant: []string{"random quote"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := testutil.StripANSI(Line(tt.context))
			for _, w := range tt.want {
				assert.Contains(t, line, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, line, nw)
			}
		})
	}
}

func TestLine_EachActionOnce(t *testing.T) {
	line := testutil.StripANSI(Line(keymap.ContextBrowse))

	assert.Equal(t, 1, strings.Count(line, "save and quit"),
		"quit is bound in two contexts but listed once")
	assert.NotContains(t, line, "esc save and quit")
}
