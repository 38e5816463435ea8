package web

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/pager"
	"github.com/blackwell-systems/booklist/internal/view"
)

const pageStyle = `
        :root {
            --orange: #fb6820;
            --teal-light: #2ecfd4;
            --teal-dim: #0d3536;
            --teal-card: #1c2829;
            --teal-border: #1e3a3c;
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: #1a1a1a;
            color: #e0e0e0;
            line-height: 1.6;
            padding: 20px;
        }
        header, form, .book-grid, nav, .no-results { max-width: 1200px; margin: 0 auto 20px; }
        h1 { font-size: 2rem; color: var(--orange); }
        .subtitle { color: #888; font-size: 0.9rem; }
        form { display: flex; flex-wrap: wrap; gap: 10px; align-items: center; }
        input, select, button {
            padding: 8px 12px;
            background: #2a2a2a;
            border: 1px solid #444;
            border-radius: 6px;
            color: #e0e0e0;
        }
        input[type=text] { flex: 1; min-width: 220px; }
        .clear-filters { color: #e07070; }
        .book-grid {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(250px, 1fr));
            gap: 20px;
        }
        .book-card {
            background: var(--teal-card);
            border: 1px solid var(--teal-border);
            border-radius: 8px;
            padding: 15px;
        }
        .book-title { font-weight: 600; color: #fff; }
        .book-title a { color: inherit; }
        .book-author { color: #aaa; font-size: 0.9rem; }
        .book-meta { color: var(--teal-light); font-size: 0.8rem; }
        .no-results { text-align: center; color: #888; padding: 40px; }
        nav { display: flex; gap: 8px; align-items: center; }
        nav a, nav span { padding: 4px 10px; border-radius: 4px; }
        nav a { color: #e0e0e0; background: #2a2a2a; text-decoration: none; }
        nav .current { background: var(--teal-dim); color: var(--teal-light); font-weight: 600; }
        nav .disabled { color: #555; }
        nav .status { color: #888; margin-left: auto; }
`

// renderPage renders the browsing page for one query.
func renderPage(store *catalog.Store, q view.Query, r view.Result) string {
	var s strings.Builder
	facets := store.Facets()
	f := q.Filter

	s.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Book List</title>
    <style>` + pageStyle + `    </style>
</head>
<body>
    <header>
        <h1>Book List</h1>
`)
	fmt.Fprintf(&s, "        <div class=\"subtitle\">%d of %d books</div>\n    </header>\n", r.TotalItems, store.Len())

	// Filter form
	s.WriteString("    <form method=\"get\" action=\"/\">\n")
	fmt.Fprintf(&s, "        <input type=\"text\" name=\"%s\" value=\"%s\" placeholder=\"Search by title, author, or country...\">\n",
		paramSearch, html.EscapeString(f.Search))

	writeSelect(&s, paramCountry, "All Countries", f.Country, stringOptions(facets.Countries))
	writeSelect(&s, paramLanguage, "All Languages", f.Language, stringOptions(facets.Languages))
	writeSelect(&s, paramCentury, "All Centuries", bucketString(f.Century), bucketOptions(facets.Centuries, catalog.FormatCentury))
	writeSelect(&s, paramPageRange, "All Page Ranges", bucketString(f.PageRange), bucketOptions(facets.PageRanges, catalog.FormatPageRange))

	sortOpts := make([][2]string, len(catalog.SortKeys))
	for i, k := range catalog.SortKeys {
		sortOpts[i] = [2]string{string(k), "Sort by " + string(k)}
	}
	writeSelect(&s, paramSort, "", string(f.SortBy), sortOpts)

	perPageOpts := make([][2]string, len(pager.Presets))
	for i, n := range pager.Presets {
		perPageOpts[i] = [2]string{strconv.Itoa(n), strconv.Itoa(n) + " per page"}
	}
	writeSelect(&s, paramPerPage, "", strconv.Itoa(r.PerPage), perPageOpts)

	s.WriteString("        <button type=\"submit\">Apply</button>\n")
	if f.HasConstraints() {
		cleared := q
		cleared.Filter = f.Cleared()
		cleared.Page = 1
		fmt.Fprintf(&s, "        <a class=\"clear-filters\" href=\"%s\">Clear all filters</a>\n", pageLink(cleared, 1))
	}
	s.WriteString("    </form>\n")

	// Results
	if r.Empty() {
		s.WriteString(`    <div class="no-results">
        <p>No books found</p>
        <p>Try adjusting your search or filters</p>
    </div>
`)
	} else {
		s.WriteString("    <div class=\"book-grid\">\n")
		for _, b := range r.Items {
			writeBookCard(&s, b)
		}
		s.WriteString("    </div>\n")
	}

	writePagination(&s, q, r)

	s.WriteString("</body>\n</html>\n")
	return s.String()
}

func writeSelect(s *strings.Builder, name, allLabel, current string, options [][2]string) {
	fmt.Fprintf(s, "        <select name=\"%s\">\n", name)
	if allLabel != "" {
		writeOption(s, "", allLabel, current == "")
	}
	for _, o := range options {
		writeOption(s, o[0], o[1], o[0] == current)
	}
	s.WriteString("        </select>\n")
}

func writeOption(s *strings.Builder, value, label string, selected bool) {
	attr := ""
	if selected {
		attr = " selected"
	}
	fmt.Fprintf(s, "            <option value=\"%s\"%s>%s</option>\n",
		html.EscapeString(value), attr, html.EscapeString(label))
}

func writeBookCard(s *strings.Builder, b catalog.Book) {
	title := html.EscapeString(b.Title)
	if webURL(b.Link) {
		title = fmt.Sprintf("<a href=\"%s\">%s</a>", html.EscapeString(b.Link), title)
	}
	fmt.Fprintf(s, `        <div class="book-card">
            <div class="book-title">%s</div>
            <div class="book-author">%s</div>
            <div class="book-meta">%s · %s · %s · %d pages</div>
        </div>
`,
		title,
		html.EscapeString(b.Author),
		html.EscapeString(catalog.FormatYear(b.Year)),
		html.EscapeString(b.Country),
		html.EscapeString(b.Language),
		b.Pages,
	)
}

func writePagination(s *strings.Builder, q view.Query, r view.Result) {
	if r.TotalPages == 0 {
		return
	}
	nav := r.Nav()
	s.WriteString("    <nav>\n")

	control := func(label string, target func() (int, bool)) {
		if p, ok := target(); ok {
			fmt.Fprintf(s, "        <a href=\"%s\">%s</a>\n", pageLink(q, p), label)
			return
		}
		fmt.Fprintf(s, "        <span class=\"disabled\">%s</span>\n", label)
	}

	control("&laquo;", nav.First)
	control("&lsaquo;", nav.Prev)
	for _, e := range r.PageNumbers {
		switch {
		case e.Ellipsis:
			fmt.Fprintf(s, "        <span>%s</span>\n", e)
		case e.Page == r.Page:
			fmt.Fprintf(s, "        <span class=\"current\">%d</span>\n", e.Page)
		default:
			fmt.Fprintf(s, "        <a href=\"%s\">%d</a>\n", pageLink(q, e.Page), e.Page)
		}
	}
	control("&rsaquo;", nav.Next)
	control("&raquo;", nav.Last)

	fmt.Fprintf(s, "        <span class=\"status\">Page %d of %d</span>\n", r.Page, r.TotalPages)
	s.WriteString("    </nav>\n")
}

// pageLink returns an escaped href for q at page p.
func pageLink(q view.Query, p int) string {
	q.Page = p
	return html.EscapeString("/?" + encodeQuery(q).Encode())
}

func stringOptions(values []string) [][2]string {
	out := make([][2]string, len(values))
	for i, v := range values {
		out[i] = [2]string{v, v}
	}
	return out
}

func bucketOptions(buckets []int, label func(int) string) [][2]string {
	out := make([][2]string, len(buckets))
	for i, b := range buckets {
		out[i] = [2]string{strconv.Itoa(b), label(b)}
	}
	return out
}

func bucketString(b *int) string {
	if b == nil {
		return ""
	}
	return strconv.Itoa(*b)
}

// webURL reports whether link is an absolute http or https URL, the only
// kind rendered as an anchor.
func webURL(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
