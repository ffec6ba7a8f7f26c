// internal/app/app.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quickquotes/internal/collection"
	"github.com/llehouerou/quickquotes/internal/keymap"
	"github.com/llehouerou/quickquotes/internal/ui/composer"
	"github.com/llehouerou/quickquotes/internal/ui/quoteview"
)

// Focus identifies which panel receives key input.
type Focus int

const (
	FocusQuote Focus = iota
	FocusCompose
)

// exitAction is what happens once the pending save completes.
type exitAction int

const (
	exitNone exitAction = iota
	exitQuit
	exitSuspend
)

// Model is the root Bubble Tea model.
type Model struct {
	coll        *collection.Collection
	saveTimeout time.Duration

	QuoteView quoteview.Model
	Composer  composer.Model
	Focus     Focus
	ShowHelp  bool

	Width, Height int

	browseKeys  *keymap.Resolver
	composeKeys *keymap.Resolver

	// Status line; cleared on the next key press.
	StatusMsg   string
	StatusIsErr bool

	addedVersion int
	pendingExit  exitAction
	saveErr      error
}

// New creates the root model for coll. saveTimeout bounds the save run on
// quit and suspend.
func New(coll *collection.Collection, saveTimeout time.Duration) Model {
	return Model{
		coll:        coll,
		saveTimeout: saveTimeout,
		QuoteView:   quoteview.New(),
		Composer:    composer.New(),
		Focus:       FocusQuote,
		browseKeys:  keymap.NewResolver(keymap.ForContext(keymap.ContextBrowse)),
		composeKeys: keymap.NewResolver(keymap.ForContext(keymap.ContextCompose)),
	}
}

// Init starts loading the collection.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// SaveErr returns the error of the last save, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// Loaded reports whether the initial load has completed.
func (m Model) Loaded() bool {
	return m.coll.IsLoaded()
}

// CanRandomize reports whether the random action is enabled.
func (m Model) CanRandomize() bool {
	return m.coll.IsLoaded() && m.coll.Len() > 0
}

// CanCompose reports whether the add form accepts input.
func (m Model) CanCompose() bool {
	return m.coll.IsLoaded()
}

func (m *Model) refreshQuote() {
	if !m.coll.IsLoaded() {
		return
	}
	m.QuoteView.SetQuote(m.coll.CurrentQuote(), m.coll.CurrentIndex(), m.coll.Len())
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
}
