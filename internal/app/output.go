package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/view"
	"github.com/fatih/color"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// ok prints a green success line.
func ok(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...any) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}

// checkFormat validates a --format value. Empty means text.
func checkFormat(f string) (string, error) {
	switch strings.ToLower(f) {
	case "", formatText:
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", f)
}

// writeEncoded writes v as JSON or YAML.
func writeEncoded(w io.Writer, v any, format string) error {
	cf := catalog.FormatJSON
	if format == formatYAML {
		cf = catalog.FormatYAML
	}
	data, err := catalog.Marshal(v, cf)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// printResult writes one page of books as an aligned table followed by the
// page-number bar.
func printResult(w io.Writer, r view.Result) {
	if r.Empty() {
		fmt.Fprintln(w, "No books found.")
		return
	}
	if len(r.Items) == 0 {
		fmt.Fprintf(w, "No books on page %d (%d page(s) in total).\n", r.Page, r.TotalPages)
		return
	}

	for _, b := range r.Items {
		fmt.Fprintf(w, "  %-40s  %-24s  %s  %s  %s\n",
			truncate(b.Title, 40),
			color.WhiteString(truncate(b.Author, 24)),
			color.CyanString(fmt.Sprintf("%-16s", truncate(b.Country, 16))),
			fmt.Sprintf("%9s", catalog.FormatYear(b.Year)),
			fmt.Sprintf("%5dp", b.Pages),
		)
	}

	fmt.Fprintln(w)
	if len(r.PageNumbers) > 0 {
		labels := make([]string, len(r.PageNumbers))
		for i, e := range r.PageNumbers {
			labels[i] = e.String()
			if !e.Ellipsis && e.Page == r.Page {
				labels[i] = color.YellowString("[" + labels[i] + "]")
			}
		}
		fmt.Fprintf(w, "%s   ", strings.Join(labels, " "))
	}
	if r.TotalPages > 0 {
		fmt.Fprintf(w, "Page %d of %d, %d book(s)\n", r.Page, r.TotalPages, r.TotalItems)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
