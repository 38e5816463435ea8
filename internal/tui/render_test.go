package tui

import (
	"testing"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/view"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPadOrTruncate(t *testing.T) {
	assert.Equal(t, "abc  ", padOrTruncate("abc", 5))
	assert.Equal(t, "abcd…", padOrTruncate("abcdefgh", 5))
	assert.Equal(t, "", padOrTruncate("abc", 0))
	assert.Equal(t, 6, ansi.StringWidth(padOrTruncate("Ελληνικά", 6)))
}

func TestComputeColumnWidths(t *testing.T) {
	narrow := computeColumnWidths(20)
	assert.Equal(t, minTitleWidth, narrow.title)
	assert.Equal(t, minAuthorWidth, narrow.author)

	wide := computeColumnWidths(400)
	assert.Equal(t, maxTitleWidth, wide.title)
	assert.LessOrEqual(t, wide.author, maxAuthorWidth)
	assert.LessOrEqual(t, wide.language, maxLanguageWidth)
}

func TestRenderBookRow(t *testing.T) {
	b := catalog.Book{Title: "The Iliad", Author: "Homer", Country: "Greece", Language: "Greek", Year: -735, Pages: 608}
	row := ansi.Strip(renderBookRow(b, computeColumnWidths(120), false))
	assert.Contains(t, row, "The Iliad")
	assert.Contains(t, row, "735 BCE")
	assert.Contains(t, row, "608")
}

func TestRenderPageBar(t *testing.T) {
	b := make([]catalog.Book, 100)
	for i := range b {
		b[i] = catalog.Book{Title: "T", Author: "A", Country: "C", Language: "L", Pages: 1}
	}
	r := view.Compute(b, view.Query{Page: 5, PerPage: 10})

	bar := ansi.Strip(renderPageBar(r))
	assert.Contains(t, bar, "1 ... 3 4  5  6 7 ... 10")
	assert.Contains(t, bar, "Page 5 of 10")

	assert.Empty(t, renderPageBar(view.Result{}))
}

func TestRenderFooterBar(t *testing.T) {
	shortcuts := []ShortcutEntry{{Key: "s", Label: "s sort"}, {Key: "p", Label: "p per page"}}

	plain := ansi.Strip(RenderFooterBar(shortcuts, ""))
	assert.Contains(t, plain, "s sort • p per page")

	active := ansi.Strip(RenderFooterBar(shortcuts, "s"))
	assert.Contains(t, active, "[ s sort ]")
}

func TestFacetOptions(t *testing.T) {
	f := catalog.Facets{Centuries: []int{-17, 20}, PageRanges: []int{2}}

	opts := facetOptions(facetCentury, f)
	if assert.Len(t, opts, 3) {
		assert.Equal(t, "All Centuries", opts[0].Label)
		assert.Empty(t, opts[0].Value)
		assert.Equal(t, "17th century BCE", opts[1].Label)
		assert.Equal(t, "-17", opts[1].Value)
	}

	opts = facetOptions(facetPageRange, f)
	assert.Equal(t, "101-200 pages", opts[1].Label)
}

func TestFacetRoundTrip(t *testing.T) {
	filter := withFacet(catalog.Filter{}, facetCentury, "-17")
	assert.Equal(t, "-17", facetValue(facetCentury, filter))
	assert.Equal(t, "17th century BCE", facetLabel(facetCentury, filter))
	assert.Equal(t, "All", facetLabel(facetCountry, filter))
}
