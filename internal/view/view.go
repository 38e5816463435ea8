// Package view runs the search → filter → sort → paginate pipeline over a
// catalog and tracks the browsing state that drives it.
package view

import (
	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/pager"
	"golang.org/x/text/language"
)

// Query is everything that determines one rendered page.
type Query struct {
	Filter  catalog.Filter
	Page    int // 1-based
	PerPage int
	Locale  language.Tag // collation for text sorts; zero value is the root locale
}

// Result is one rendered page plus the totals needed for navigation.
type Result struct {
	Items       []catalog.Book `json:"items" yaml:"items"`
	TotalItems  int            `json:"totalItems" yaml:"totalItems"`
	TotalPages  int            `json:"totalPages" yaml:"totalPages"`
	Page        int            `json:"page" yaml:"page"`
	PerPage     int            `json:"perPage" yaml:"perPage"`
	PageNumbers []pager.Entry  `json:"pageNumbers" yaml:"pageNumbers"`
}

// Empty reports whether no books matched.
func (r Result) Empty() bool {
	return r.TotalItems == 0
}

// Nav returns the first/prev/next/last navigation for this result.
func (r Result) Nav() pager.Nav {
	return pager.Nav{Current: r.Page, Total: r.TotalPages}
}

// Compute evaluates q against books. It never modifies books. A page past
// the end yields no items rather than an error; a non-positive page size
// falls back to pager.DefaultPerPage.
func Compute(books []catalog.Book, q Query) Result {
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = pager.DefaultPerPage
	}

	matched := q.Filter.Apply(books)
	sorted := catalog.Sort(matched, q.Filter.SortBy, q.Locale)
	total := pager.TotalPages(len(sorted), perPage)

	items := pager.Slice(sorted, q.Page, perPage)
	if items == nil {
		items = []catalog.Book{}
	}

	return Result{
		Items:       items,
		TotalItems:  len(sorted),
		TotalPages:  total,
		Page:        q.Page,
		PerPage:     perPage,
		PageNumbers: pager.Window(q.Page, total),
	}
}
