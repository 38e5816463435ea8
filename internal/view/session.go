package view

import (
	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/pager"
	"golang.org/x/text/language"
)

// Session is the in-memory browsing state for one user: search term, facet
// selection, sort key and pagination. Changing the search, the filter or the
// page size always returns to page 1.
//
// A Session is not safe for concurrent use.
type Session struct {
	store   *catalog.Store
	filter  catalog.Filter
	page    int
	perPage int
	locale  language.Tag
}

// NewSession starts a session on page 1 with no facets set and the given
// sort key and page size.
func NewSession(store *catalog.Store, sortBy catalog.SortKey, perPage int, locale language.Tag) *Session {
	if perPage <= 0 {
		perPage = pager.DefaultPerPage
	}
	return &Session{
		store:   store,
		filter:  catalog.Filter{SortBy: catalog.ParseSortKey(string(sortBy))},
		page:    1,
		perPage: perPage,
		locale:  locale,
	}
}

// Store returns the catalog the session browses.
func (s *Session) Store() *catalog.Store { return s.store }

// Filter returns the current search term and facet selection.
func (s *Session) Filter() catalog.Filter { return s.filter }

// Page returns the current 1-based page.
func (s *Session) Page() int { return s.page }

// PerPage returns the current page size.
func (s *Session) PerPage() int { return s.perPage }

// Query returns the query for the current state.
func (s *Session) Query() Query {
	return Query{Filter: s.filter, Page: s.page, PerPage: s.perPage, Locale: s.locale}
}

// Result computes the current page.
func (s *Session) Result() Result {
	return Compute(s.store.Books(), s.Query())
}

// SetSearch replaces the search term and returns to page 1.
func (s *Session) SetSearch(term string) {
	s.filter.Search = term
	s.page = 1
}

// SetFilter replaces the facet selection and sort key wholesale and returns
// to page 1. The search term is kept.
func (s *Session) SetFilter(f catalog.Filter) {
	f.Search = s.filter.Search
	f.SortBy = catalog.ParseSortKey(string(f.SortBy))
	s.filter = f
	s.page = 1
}

// SetSort changes the sort key. Like any other filter change it returns to
// page 1.
func (s *Session) SetSort(key catalog.SortKey) {
	f := s.filter
	f.SortBy = key
	s.SetFilter(f)
}

// ClearFilters unsets every facet and resets the sort key to title.
func (s *Session) ClearFilters() {
	s.SetFilter(s.filter.Cleared())
}

// SetPerPage changes the page size and returns to page 1. Non-positive
// sizes are ignored.
func (s *Session) SetPerPage(n int) {
	if n <= 0 {
		return
	}
	s.perPage = n
	s.page = 1
}

// GoTo moves to page p, clamped to the pages of the current result. It
// reports whether the page changed.
func (s *Session) GoTo(p int) bool {
	return s.move(func(n pager.Nav) (int, bool) { return n.Go(p) })
}

// First moves to page 1.
func (s *Session) First() bool { return s.move(pager.Nav.First) }

// Prev moves back one page.
func (s *Session) Prev() bool { return s.move(pager.Nav.Prev) }

// Next moves forward one page.
func (s *Session) Next() bool { return s.move(pager.Nav.Next) }

// Last moves to the final page.
func (s *Session) Last() bool { return s.move(pager.Nav.Last) }

func (s *Session) move(step func(pager.Nav) (int, bool)) bool {
	total := pager.TotalPages(len(s.filter.Apply(s.store.Books())), s.perPage)
	p, ok := step(pager.Nav{Current: s.page, Total: total})
	if ok {
		s.page = p
	}
	return ok
}
