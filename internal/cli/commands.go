package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/quickquotes/internal/errmsg"
	"github.com/llehouerou/quickquotes/internal/quote"
)

func newRandomCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.coll.Load(cmd.Context()); err != nil {
				return errors.New(errmsg.Format(errmsg.OpQuotesLoad, err))
			}
			s.coll.SelectRandomQuote()
			fmt.Fprintln(cmd.OutOrStdout(), s.coll.CurrentQuote())
			return nil
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add QUOTATION AUTHOR",
		Short: "Add a quote to the collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := quote.New(args[0], args[1])
			if !q.IsValid() {
				return errors.New(errmsg.Format(errmsg.OpQuoteAdd,
					errors.New("both the quotation and the author are required")))
			}

			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			if err := s.coll.Load(ctx); err != nil {
				return errors.New(errmsg.Format(errmsg.OpQuotesLoad, err))
			}
			s.coll.AddQuote(q.Quotation, q.Author)

			saveCtx, cancel := context.WithTimeout(ctx, s.cfg.SaveTimeout)
			defer cancel()
			if err := s.coll.Save(saveCtx); err != nil {
				return errors.New(errmsg.Format(errmsg.OpQuotesSave, err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added quote #%s: %s\n", humanize.Comma(int64(s.coll.Len())), q)
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.coll.Load(cmd.Context()); err != nil {
				return errors.New(errmsg.Format(errmsg.OpQuotesLoad, err))
			}

			out := cmd.OutOrStdout()
			quotes := s.coll.Quotes()
			if len(quotes) == 0 {
				fmt.Fprintln(out, "No quotes in your collection yet.")
				return nil
			}
			for i, q := range quotes {
				fmt.Fprintf(out, "%s. %s\n", humanize.Comma(int64(i+1)), q)
			}
			return nil
		},
	}
}

func newPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where quotes are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			fmt.Fprintln(cmd.OutOrStdout(), s.store.Path())
			return nil
		},
	}
}
