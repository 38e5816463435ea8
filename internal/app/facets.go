package app

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newFacetsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the values available for each filter",
		Long: `List the countries, languages, centuries and page ranges present in the
book list, with the value to pass to the matching browse flag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := checkFormat(format)
			if err != nil {
				return err
			}
			store := openStore(cmd)
			if out != formatText {
				return writeEncoded(cmd.OutOrStdout(), store.Facets(), out)
			}
			printFacets(cmd.OutOrStdout(), store.Facets())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: text, json or yaml")
	return cmd
}

func printFacets(w io.Writer, f catalog.Facets) {
	header(w, "Countries (--country)")
	for _, c := range f.Countries {
		fmt.Fprintf(w, "  %s\n", c)
	}

	header(w, "\nLanguages (--language)")
	for _, l := range f.Languages {
		fmt.Fprintf(w, "  %s\n", l)
	}

	header(w, "\nCenturies (--century)")
	for _, c := range f.Centuries {
		fmt.Fprintf(w, "  %5d  %s\n", c, color.WhiteString(catalog.FormatCentury(c)))
	}

	header(w, "\nPage ranges (--page-range)")
	for _, r := range f.PageRanges {
		fmt.Fprintf(w, "  %5d  %s\n", r, color.WhiteString(catalog.FormatPageRange(r)))
	}
}
