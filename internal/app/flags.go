package app

import (
	"fmt"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/config"
	"github.com/blackwell-systems/booklist/internal/view"
	"github.com/spf13/cobra"
)

// queryFlags are the search, filter, sort and paging flags shared by the
// commands that show books.
type queryFlags struct {
	search    string
	country   string
	language  string
	century   int
	pageRange int
	sort      string
	page      int
	perPage   int
}

func (f *queryFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.search, "search", "", "Match title, author or country (case-insensitive)")
	fl.StringVar(&f.country, "country", "", "Only books from this country")
	fl.StringVar(&f.language, "language", "", "Only books in this language")
	fl.IntVar(&f.century, "century", 0, "Only books from this century (negative for BCE, e.g. -5)")
	fl.IntVar(&f.pageRange, "page-range", 0, "Only books in this page-range bucket (1 = 1-100 pages, 2 = 101-200, ...)")
	fl.StringVar(&f.sort, "sort", "", "Sort by title, author, country, year or pages (default from config)")
	fl.IntVar(&f.page, "page", 1, "Page to show")
	fl.IntVar(&f.perPage, "per-page", 0, "Books per page (default from config)")
}

// query turns the flags into a view query. Flags left unset fall back to
// the config.
func (f *queryFlags) query(cmd *cobra.Command, c *config.Config) (view.Query, error) {
	fl := cmd.Flags()

	q := view.Query{
		Filter: catalog.Filter{
			Search:   f.search,
			Country:  f.country,
			Language: f.language,
			SortBy:   c.Browse.SortKey(),
		},
		Page:    f.page,
		PerPage: c.Browse.EffectivePerPage(),
		Locale:  c.Browse.LocaleTag(),
	}

	if fl.Changed("sort") {
		q.Filter.SortBy = catalog.ParseSortKey(f.sort)
	}
	if fl.Changed("century") {
		q.Filter.Century = catalog.Bucket(f.century)
	}
	if fl.Changed("page-range") {
		if f.pageRange < 1 {
			return q, fmt.Errorf("--page-range must be at least 1, got %d", f.pageRange)
		}
		q.Filter.PageRange = catalog.Bucket(f.pageRange)
	}
	if f.page < 1 {
		return q, fmt.Errorf("--page must be at least 1, got %d", f.page)
	}
	if fl.Changed("per-page") {
		if f.perPage < 1 {
			return q, fmt.Errorf("--per-page must be at least 1, got %d", f.perPage)
		}
		q.PerPage = f.perPage
	}
	return q, nil
}

// newSession starts an interactive session positioned at q.
func newSession(store *catalog.Store, q view.Query) *view.Session {
	s := view.NewSession(store, q.Filter.SortBy, q.PerPage, q.Locale)
	s.SetSearch(q.Filter.Search)
	s.SetFilter(q.Filter)
	s.GoTo(q.Page)
	return s
}
