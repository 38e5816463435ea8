package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a result list.
type SortKey string

const (
	SortTitle   SortKey = "title"
	SortAuthor  SortKey = "author"
	SortYear    SortKey = "year"
	SortPages   SortKey = "pages"
	SortCountry SortKey = "country"
)

// SortKeys lists the supported keys in display order.
var SortKeys = []SortKey{SortTitle, SortAuthor, SortYear, SortPages, SortCountry}

// ParseSortKey maps a string to a SortKey. Unknown values fall back to
// SortTitle.
func ParseSortKey(s string) SortKey {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys, k) {
		return k
	}
	return SortTitle
}

// Next returns the key after k in SortKeys, wrapping around.
func (k SortKey) Next() SortKey {
	i := slices.Index(SortKeys, ParseSortKey(string(k)))
	return SortKeys[(i+1)%len(SortKeys)]
}

// Sort returns a new slice ordered by key. Text keys ascend using the
// collation rules of locale; year and pages descend. Equal keys keep their
// input order.
func Sort(books []Book, key SortKey, locale language.Tag) []Book {
	out := slices.Clone(books)

	switch ParseSortKey(string(key)) {
	case SortYear:
		slices.SortStableFunc(out, func(a, b Book) int { return cmp.Compare(b.Year, a.Year) })
	case SortPages:
		slices.SortStableFunc(out, func(a, b Book) int { return cmp.Compare(b.Pages, a.Pages) })
	case SortAuthor:
		sortText(out, locale, func(b Book) string { return b.Author })
	case SortCountry:
		sortText(out, locale, func(b Book) string { return b.Country })
	default:
		sortText(out, locale, func(b Book) string { return b.Title })
	}
	return out
}

// sortText sorts in place. A collator is not safe for concurrent use, so
// each call builds its own.
func sortText(books []Book, locale language.Tag, field func(Book) string) {
	c := collate.New(locale)
	slices.SortStableFunc(books, func(a, b Book) int {
		return c.CompareString(field(a), field(b))
	})
}
