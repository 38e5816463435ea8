package catalog

import "strings"

// Filter is the user's search term plus facet selection. Empty strings and
// nil buckets mean "no constraint" for that facet.
type Filter struct {
	Search    string  // matches title, author, or country
	Country   string  // exact
	Language  string  // exact
	Century   *int    // century bucket, see Century
	PageRange *int    // page-range bucket, see PageRange
	SortBy    SortKey // ordering applied after filtering
}

// Apply returns the subset of books matching all non-empty filter fields,
// preserving catalog order. The input slice is not modified.
func (f Filter) Apply(books []Book) []Book {
	q := strings.ToLower(f.Search)
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if q != "" && !matchesSearch(b, q) {
			continue
		}
		if f.Country != "" && b.Country != f.Country {
			continue
		}
		if f.Language != "" && b.Language != f.Language {
			continue
		}
		if f.PageRange != nil && b.PageRange() != *f.PageRange {
			continue
		}
		if f.Century != nil && b.Century() != *f.Century {
			continue
		}
		out = append(out, b)
	}
	return out
}

// HasConstraints reports whether any facet is set. The search term and sort
// key are not facets.
func (f Filter) HasConstraints() bool {
	return f.Country != "" || f.Language != "" || f.Century != nil || f.PageRange != nil
}

// Cleared returns the filter with every facet unset and the sort key reset
// to title. The search term is kept.
func (f Filter) Cleared() Filter {
	return Filter{Search: f.Search, SortBy: SortTitle}
}

// Bucket returns a pointer to v, for building Century and PageRange values.
func Bucket(v int) *int {
	return &v
}

// matchesSearch expects q to be lower-cased already.
func matchesSearch(b Book, q string) bool {
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Author), q) {
		return true
	}
	return strings.Contains(strings.ToLower(b.Country), q)
}
