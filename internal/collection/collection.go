// Package collection holds the in-memory quote list, the displayed-quote
// cursor and the scratch quote backing the add form.
//
// A Collection is safe for concurrent use. Store I/O runs outside the lock on
// a snapshot, so UI callers never block on the file system while adding or
// selecting quotes.
package collection

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/llehouerou/quickquotes/internal/quote"
	"github.com/llehouerou/quickquotes/internal/store"
)

// PlaceholderText is shown as the current quote when the collection is empty.
const PlaceholderText = "< no quotes in your collection >"

// Collection is the quote list model for one application session.
type Collection struct {
	mu           sync.Mutex
	quotes       []quote.Quote
	currentIndex int
	editing      quote.Quote
	loaded       bool

	store store.Store
	rng   *rand.Rand
}

// Option configures a Collection.
type Option func(*Collection)

// WithRand sets the random source used by SelectRandomQuote.
func WithRand(rng *rand.Rand) Option {
	return func(c *Collection) {
		c.rng = rng
	}
}

// New creates an empty collection persisted through s.
func New(s store.Store, opts ...Option) *Collection {
	c := &Collection{
		store: s,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // display shuffle, not security
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddQuote appends a new quote built from the raw strings.
// No validation happens here; callers gate on Editing().IsValid() or use
// SubmitEditing. The current index is left unchanged.
func (c *Collection) AddQuote(quotation, author string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes = append(c.quotes, quote.New(quotation, author))
}

// SelectRandomQuote moves the cursor to a random quote.
// With two or more quotes the new index always differs from the previous one.
// It is a no-op on an empty collection.
func (c *Collection) SelectRandomQuote() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectRandomLocked()
}

func (c *Collection) selectRandomLocked() {
	n := len(c.quotes)
	if n == 0 {
		return
	}
	if n == 1 {
		c.currentIndex = 0
		return
	}

	next := c.rng.IntN(n)
	for next == c.currentIndex {
		next = c.rng.IntN(n)
	}
	c.currentIndex = next
}

// CurrentQuote returns the displayed quote, or a placeholder when empty.
func (c *Collection) CurrentQuote() quote.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.quotes) == 0 {
		return quote.New(PlaceholderText, "")
	}
	return c.quotes[c.currentIndex]
}

// CurrentIndex returns the index of the displayed quote.
func (c *Collection) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentIndex
}

// Quotes returns a copy of the quote list.
func (c *Collection) Quotes() []quote.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]quote.Quote, len(c.quotes))
	copy(out, c.quotes)
	return out
}

// Len returns the number of quotes.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.quotes)
}

// IsLoaded reports whether Load has completed at least once.
func (c *Collection) IsLoaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Editing returns the scratch quote being composed.
func (c *Collection) Editing() quote.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editing
}

// SetEditing stores the raw form text in the scratch quote.
// Whitespace-only values are stored as empty strings.
func (c *Collection) SetEditing(quotation, author string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing.Quotation = blankToEmpty(quotation)
	c.editing.Author = blankToEmpty(author)
}

// ResetEditing empties the scratch quote.
func (c *Collection) ResetEditing() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing.Empty()
}

// SubmitEditing appends the scratch quote when it is valid and reports
// whether it did. The scratch quote itself is not reset.
func (c *Collection) SubmitEditing() (quote.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.editing.IsValid() {
		return quote.Quote{}, false
	}
	q := quote.New(c.editing.Quotation, c.editing.Author)
	c.quotes = append(c.quotes, q)
	return q, true
}

// Load replaces the quotes with the persisted ones and selects a random quote.
// Records missing a quotation or an author are dropped. When the store has no
// usable data the collection is left untouched.
// The collection is marked loaded even when the store fails.
func (c *Collection) Load(ctx context.Context) error {
	loaded, err := c.store.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = true

	if err != nil {
		return err
	}
	quotes := make([]quote.Quote, 0, len(loaded))
	for _, q := range loaded {
		q = quote.New(q.Quotation, q.Author)
		if !q.IsValid() {
			continue
		}
		quotes = append(quotes, q)
	}
	if skipped := len(loaded) - len(quotes); skipped > 0 {
		slog.Warn("skipped incomplete saved quotes", "path", c.store.Path(), "count", skipped)
	}
	if len(quotes) == 0 {
		slog.Info("no saved quotes", "path", c.store.Path())
		return nil
	}

	c.quotes = quotes
	if c.currentIndex >= len(c.quotes) {
		c.currentIndex = 0
	}
	c.selectRandomLocked()

	slog.Info("loaded quotes", "path", c.store.Path(), "count", len(quotes))
	return nil
}

// Save writes the current quotes to the store, replacing its contents.
func (c *Collection) Save(ctx context.Context) error {
	return c.store.Save(ctx, c.Quotes())
}

// StorePath returns where the collection is persisted.
func (c *Collection) StorePath() string {
	return c.store.Path()
}

func blankToEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
