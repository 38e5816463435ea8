package app

import (
	"github.com/blackwell-systems/booklist/internal/tui"
	"github.com/blackwell-systems/booklist/internal/view"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var (
		qf     queryFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse the book list",
		Long: `Browse the book list one page at a time.

On a terminal this opens the interactive browser, starting from the given
filters. With --format, --no-interactive, or when output is piped, it prints
one page and exits.`,
		Example: `  booklist browse
  booklist browse --country Greece --sort year
  booklist browse --century -5 --format json
  booklist ls --per-page 50 --page 2 --no-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := checkFormat(format)
			if err != nil {
				return err
			}
			q, err := qf.query(cmd, cfg)
			if err != nil {
				return err
			}

			store := openStore(cmd)
			if tui.ShouldUseTUI(cmd) {
				return tui.RunBrowser(newSession(store, q))
			}

			r := view.Compute(store.Books(), q)
			if out != formatText {
				return writeEncoded(cmd.OutOrStdout(), r, out)
			}
			printResult(cmd.OutOrStdout(), r)
			return nil
		},
	}

	qf.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", "Print instead of browsing: text, json or yaml")
	return cmd
}
