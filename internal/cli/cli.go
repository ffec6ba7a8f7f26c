// Package cli wires configuration, logging and storage behind the
// quickquotes command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/quickquotes/internal/app"
	"github.com/llehouerou/quickquotes/internal/collection"
	"github.com/llehouerou/quickquotes/internal/config"
	"github.com/llehouerou/quickquotes/internal/errmsg"
	"github.com/llehouerou/quickquotes/internal/logging"
	"github.com/llehouerou/quickquotes/internal/store"
)

type options struct {
	configPath string
}

// NewRootCmd builds the command tree. Running it without a subcommand starts
// the TUI.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "quickquotes",
		Short:         "Collect quotations and show one at random",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/quickquotes/config.toml)")

	root.AddCommand(
		newRandomCmd(opts),
		newAddCmd(opts),
		newListCmd(opts),
		newPathCmd(opts),
	)
	return root
}

// session holds everything a command needs to work on the collection.
type session struct {
	cfg    *config.Config
	store  store.Store
	coll   *collection.Collection
	logger io.Closer
}

func openSession(opts *options) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logFile, err := cfg.LogFilePath()
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	logger, err := logging.Setup(logging.Config{
		Level:      cfg.Log.Level,
		File:       logFile,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	st, err := store.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		_ = logger.Close()
		return nil, errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	return &session{
		cfg:    cfg,
		store:  st,
		coll:   collection.New(st),
		logger: logger,
	}, nil
}

func (s *session) Close() error {
	return errors.Join(s.store.Close(), s.logger.Close())
}

func runTUI(opts *options) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(app.New(s.coll, s.cfg.SaveTimeout), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(app.Model); ok && m.SaveErr() != nil {
		return errors.New(errmsg.Format(errmsg.OpQuotesSave, m.SaveErr()))
	}
	return nil
}
