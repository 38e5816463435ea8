package view_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/view"
)

func threeBooks() []catalog.Book {
	return []catalog.Book{
		{Title: "A", Author: "x", Country: "US", Language: "English", Year: 1850, Pages: 50},
		{Title: "B", Author: "y", Country: "US", Language: "English", Year: 1950, Pages: 150},
		{Title: "C", Author: "z", Country: "FR", Language: "French", Year: 1850, Pages: 250},
	}
}

func manyBooks(n int) []catalog.Book {
	out := make([]catalog.Book, n)
	for i := range out {
		out[i] = catalog.Book{
			Title:    fmt.Sprintf("Book %03d", i+1),
			Author:   "Author",
			Country:  "US",
			Language: "English",
			Year:     1900 + i,
			Pages:    100 + i,
		}
	}
	return out
}

func titles(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestCompute_CombinedScenario(t *testing.T) {
	books := threeBooks()
	f := catalog.Filter{Country: "US", SortBy: catalog.SortYear}

	res := view.Compute(books, view.Query{Filter: f, Page: 1, PerPage: 20})
	assert.Equal(t, []string{"B", "A"}, titles(res.Items))
	assert.Equal(t, 2, res.TotalItems)
	assert.Equal(t, 1, res.TotalPages)
	assert.Nil(t, res.PageNumbers)

	res = view.Compute(books, view.Query{Filter: f, Page: 2, PerPage: 1})
	assert.Equal(t, []string{"A"}, titles(res.Items))
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, "[1 2]", fmt.Sprint(res.PageNumbers))
}

func TestCompute_Pagination(t *testing.T) {
	res := view.Compute(manyBooks(47), view.Query{Page: 3, PerPage: 20})
	assert.Equal(t, 47, res.TotalItems)
	assert.Equal(t, 3, res.TotalPages)
	require.Len(t, res.Items, 7)
	assert.Equal(t, "Book 041", res.Items[0].Title)
}

func TestCompute_OutOfRangePage(t *testing.T) {
	res := view.Compute(threeBooks(), view.Query{Page: 9, PerPage: 20})
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, 3, res.TotalItems)
	assert.Equal(t, 1, res.TotalPages)
}

func TestCompute_NoMatches(t *testing.T) {
	res := view.Compute(threeBooks(), view.Query{Filter: catalog.Filter{Search: "zzz"}, Page: 1})
	assert.True(t, res.Empty())
	assert.Equal(t, 0, res.TotalPages)
	assert.Equal(t, 20, res.PerPage)
	assert.Empty(t, res.Items)
}

func TestCompute_FacetsCombineWithAnd(t *testing.T) {
	f := catalog.Filter{
		Language:  "English",
		Century:   catalog.Bucket(19),
		PageRange: catalog.Bucket(1),
	}
	res := view.Compute(threeBooks(), view.Query{Filter: f, Page: 1})
	assert.Equal(t, []string{"A"}, titles(res.Items))
}

func TestCompute_DoesNotMutateCatalog(t *testing.T) {
	books := threeBooks()
	_ = view.Compute(books, view.Query{Filter: catalog.Filter{SortBy: catalog.SortPages}, Page: 1})
	assert.Equal(t, []string{"A", "B", "C"}, titles(books))
}

func TestResult_JSON(t *testing.T) {
	res := view.Compute(manyBooks(200), view.Query{Page: 5, PerPage: 20})
	data, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded struct {
		TotalItems  int   `json:"totalItems"`
		TotalPages  int   `json:"totalPages"`
		PageNumbers []any `json:"pageNumbers"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 200, decoded.TotalItems)
	assert.Equal(t, 10, decoded.TotalPages)
	assert.Equal(t, []any{1.0, "...", 3.0, 4.0, 5.0, 6.0, 7.0, "...", 10.0}, decoded.PageNumbers)
}

func newSession(books []catalog.Book) *view.Session {
	return view.NewSession(catalog.NewStore(books), catalog.SortTitle, 20, language.English)
}

func TestSession_Defaults(t *testing.T) {
	s := view.NewSession(catalog.NewStore(nil), "", 0, language.Und)
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 20, s.PerPage())
	assert.Equal(t, catalog.SortTitle, s.Filter().SortBy)
	assert.False(t, s.Filter().HasConstraints())
	assert.True(t, s.Result().Empty())
}

func TestSession_SearchResetsPage(t *testing.T) {
	s := newSession(manyBooks(100))
	require.True(t, s.GoTo(3))
	assert.Equal(t, 3, s.Page())

	// Page 3 would still be valid, but the reset is unconditional.
	s.SetSearch("Book")
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, "Book", s.Filter().Search)
}

func TestSession_FilterResetsPage(t *testing.T) {
	s := newSession(manyBooks(100))
	s.Last()
	assert.Equal(t, 5, s.Page())

	s.SetFilter(catalog.Filter{Country: "US"})
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, "US", s.Filter().Country)

	s.Next()
	s.SetSort(catalog.SortYear)
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, catalog.SortYear, s.Filter().SortBy)
}

func TestSession_SetFilterKeepsSearch(t *testing.T) {
	s := newSession(threeBooks())
	s.SetSearch("a")
	s.SetFilter(catalog.Filter{Country: "US", SortBy: "nonsense"})
	assert.Equal(t, "a", s.Filter().Search)
	assert.Equal(t, catalog.SortTitle, s.Filter().SortBy)
}

func TestSession_PerPageResetsPage(t *testing.T) {
	s := newSession(manyBooks(100))
	s.Next()
	s.SetPerPage(50)
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 50, s.PerPage())
	assert.Equal(t, 2, s.Result().TotalPages)

	s.SetPerPage(0)
	assert.Equal(t, 50, s.PerPage())
}

func TestSession_ClearFilters(t *testing.T) {
	s := newSession(threeBooks())
	s.SetFilter(catalog.Filter{Country: "FR", Century: catalog.Bucket(19), SortBy: catalog.SortPages})
	require.Equal(t, []string{"C"}, titles(s.Result().Items))

	s.ClearFilters()
	assert.False(t, s.Filter().HasConstraints())
	assert.Equal(t, catalog.SortTitle, s.Filter().SortBy)
	assert.Equal(t, []string{"A", "B", "C"}, titles(s.Result().Items))
}

func TestSession_NavigationClamps(t *testing.T) {
	s := newSession(manyBooks(47))

	assert.False(t, s.First(), "first is disabled on page 1")
	assert.False(t, s.Prev(), "prev is disabled on page 1")

	assert.True(t, s.Next())
	assert.True(t, s.Next())
	assert.Equal(t, 3, s.Page())
	assert.False(t, s.Next(), "next is disabled on the last page")
	assert.False(t, s.Last(), "last is disabled on the last page")

	assert.True(t, s.GoTo(-4))
	assert.Equal(t, 1, s.Page())
	assert.True(t, s.GoTo(100))
	assert.Equal(t, 3, s.Page())
}

func TestSession_NavigationWithNoResults(t *testing.T) {
	s := newSession(threeBooks())
	s.SetSearch("nothing matches this")
	assert.False(t, s.Next())
	assert.False(t, s.Last())
	assert.Equal(t, 1, s.Page())
}
