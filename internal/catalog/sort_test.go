package catalog_test

import (
	"testing"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"golang.org/x/text/language"
)

func TestSort_TitleDefault(t *testing.T) {
	got := titles(catalog.Sort(sample(t), catalog.SortTitle, language.English))
	want := []string{"Shakespeare's Sonnets", "The Epic Of Gilgamesh", "The Iliad", "Things Fall Apart"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSort_YearDescending(t *testing.T) {
	got := titles(catalog.Sort(sample(t), catalog.SortYear, language.English))
	want := []string{"Things Fall Apart", "Shakespeare's Sonnets", "The Iliad", "The Epic Of Gilgamesh"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSort_PagesDescending(t *testing.T) {
	got := catalog.Sort(sample(t), catalog.SortPages, language.English)
	for i := 1; i < len(got); i++ {
		if got[i-1].Pages < got[i].Pages {
			t.Errorf("not descending at %d: %d < %d", i, got[i-1].Pages, got[i].Pages)
		}
	}
}

func TestSort_AuthorAndCountry(t *testing.T) {
	got := catalog.Sort(sample(t), catalog.SortAuthor, language.English)
	if got[0].Author != "Chinua Achebe" || got[3].Author != "William Shakespeare" {
		t.Errorf("author order: %v", titles(got))
	}
	got = catalog.Sort(sample(t), catalog.SortCountry, language.English)
	if got[0].Country != "Greece" || got[3].Country != "United Kingdom" {
		t.Errorf("country order: %v", titles(got))
	}
}

func TestSort_LocaleAware(t *testing.T) {
	books := []catalog.Book{{Title: "zebra"}, {Title: "Émile"}, {Title: "apple"}}
	got := titles(catalog.Sort(books, catalog.SortTitle, language.French))
	want := []string{"apple", "Émile", "zebra"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSort_Stable(t *testing.T) {
	books := []catalog.Book{
		{Title: "Same", Author: "First", Year: 1900},
		{Title: "Another", Author: "X", Year: 1900},
		{Title: "Same", Author: "Second", Year: 1900},
	}
	got := catalog.Sort(books, catalog.SortTitle, language.English)
	if got[1].Author != "First" || got[2].Author != "Second" {
		t.Errorf("equal titles reordered: %v, %v", got[1].Author, got[2].Author)
	}
	got = catalog.Sort(books, catalog.SortYear, language.English)
	for i := range books {
		if got[i] != books[i] {
			t.Errorf("equal years reordered at %d", i)
		}
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	books := sample(t)
	first := books[0].Title
	_ = catalog.Sort(books, catalog.SortYear, language.English)
	if books[0].Title != first {
		t.Errorf("input reordered")
	}
}

func TestSort_UnknownKeyFallsBackToTitle(t *testing.T) {
	a := titles(catalog.Sort(sample(t), catalog.SortKey("rating"), language.English))
	b := titles(catalog.Sort(sample(t), catalog.SortTitle, language.English))
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("[%d] = %q, want %q", i, a[i], b[i])
		}
	}
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]catalog.SortKey{
		"title":   catalog.SortTitle,
		"AUTHOR":  catalog.SortAuthor,
		" year ":  catalog.SortYear,
		"pages":   catalog.SortPages,
		"country": catalog.SortCountry,
		"":        catalog.SortTitle,
		"bogus":   catalog.SortTitle,
	}
	for in, want := range cases {
		if got := catalog.ParseSortKey(in); got != want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSortKey_Next(t *testing.T) {
	if got := catalog.SortTitle.Next(); got != catalog.SortAuthor {
		t.Errorf("title.Next = %q", got)
	}
	if got := catalog.SortCountry.Next(); got != catalog.SortTitle {
		t.Errorf("country.Next = %q, want wrap to title", got)
	}
}
