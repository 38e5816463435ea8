package app

import (
	"github.com/blackwell-systems/booklist/internal/view"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		qf     queryFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search books by title, author, or country",
		Long: `Search the book list for a query string.
Matches title, author, and country (case-insensitive substring).

Use the filter flags to narrow results further.`,
		Example: `  booklist search homer
  booklist search "things fall" --format json
  booklist search the --language English --sort year`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := checkFormat(format)
			if err != nil {
				return err
			}
			q, err := qf.query(cmd, cfg)
			if err != nil {
				return err
			}
			q.Filter.Search = args[0]

			store := openStore(cmd)
			if store.Len() == 0 {
				warn("The catalog at %s is empty", cfg.Catalog.Source)
			}

			r := view.Compute(store.Books(), q)
			if out != formatText {
				return writeEncoded(cmd.OutOrStdout(), r, out)
			}
			if !r.Empty() {
				header(cmd.OutOrStdout(), "── %q  (%d matches)", args[0], r.TotalItems)
			}
			printResult(cmd.OutOrStdout(), r)
			return nil
		},
	}

	qf.register(cmd)
	// search takes the query as an argument
	_ = cmd.Flags().MarkHidden("search")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text, json or yaml")
	return cmd
}
