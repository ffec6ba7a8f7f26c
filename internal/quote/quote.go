// Package quote defines the quotation record stored in a collection.
package quote

import (
	"fmt"
	"strings"
)

// Quote is a quotation and its author.
// The zero value is the empty quote.
type Quote struct {
	Quotation string `json:"quotation"`
	Author    string `json:"author"`
}

// New creates a quote with both fields trimmed of surrounding whitespace.
func New(quotation, author string) Quote {
	return Quote{
		Quotation: strings.TrimSpace(quotation),
		Author:    strings.TrimSpace(author),
	}
}

// IsValid returns true if both quotation and author are non-empty after trimming.
func (q Quote) IsValid() bool {
	return strings.TrimSpace(q.Quotation) != "" && strings.TrimSpace(q.Author) != ""
}

// Empty resets the quote to the empty state.
func (q *Quote) Empty() {
	q.Quotation = ""
	q.Author = ""
}

func (q Quote) String() string {
	if q.Author == "" {
		return fmt.Sprintf("%q", q.Quotation)
	}
	return fmt.Sprintf("%q - %s", q.Quotation, q.Author)
}
