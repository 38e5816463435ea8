package catalog_test

import (
	"errors"
	"testing"

	"github.com/blackwell-systems/booklist/internal/catalog"
)

var sampleJSON = []byte(`[
  {
    "author": "Chinua Achebe",
    "country": "Nigeria",
    "imageLink": "images/things-fall-apart.jpg",
    "language": "English",
    "link": "https://en.wikipedia.org/wiki/Things_Fall_Apart\n",
    "pages": 209,
    "title": "Things Fall Apart",
    "year": 1958
  },
  {
    "author": "Homer",
    "country": "Greece",
    "language": "Greek",
    "pages": 608,
    "title": "The Iliad",
    "year": -735
  },
  {
    "author": "William Shakespeare",
    "country": "United Kingdom",
    "language": "English",
    "pages": 152,
    "title": "Shakespeare's Sonnets",
    "year": 1609
  },
  {
    "author": "Unknown",
    "country": "Sumer and Akkadian Empire",
    "language": "Akkadian",
    "pages": 160,
    "title": "The Epic Of Gilgamesh",
    "year": -1700
  }
]`)

var sampleYAML = []byte(`
- title: "Things Fall Apart"
  author: "Chinua Achebe"
  country: Nigeria
  language: English
  year: 1958
  pages: 209
  imageLink: images/things-fall-apart.jpg
- title: "The Iliad"
  author: Homer
  country: Greece
  language: Greek
  year: -735
  pages: 608
`)

func sample(t *testing.T) []catalog.Book {
	t.Helper()
	books, err := catalog.Parse(sampleJSON, catalog.FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return books
}

func titles(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

// --- Parse ---

func TestParse_ValidJSON(t *testing.T) {
	books := sample(t)
	if len(books) != 4 {
		t.Fatalf("expected 4 books, got %d", len(books))
	}
	if books[0].ImageLink != "images/things-fall-apart.jpg" {
		t.Errorf("books[0].ImageLink = %q", books[0].ImageLink)
	}
	if books[1].Year != -735 {
		t.Errorf("books[1].Year = %d, want -735", books[1].Year)
	}
}

func TestParse_ValidYAML(t *testing.T) {
	books, err := catalog.Parse(sampleYAML, catalog.FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[1].Author != "Homer" {
		t.Errorf("books[1].Author = %q, want %q", books[1].Author, "Homer")
	}
	if books[0].ImageLink != "images/things-fall-apart.jpg" {
		t.Errorf("books[0].ImageLink = %q", books[0].ImageLink)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, f := range []catalog.Format{catalog.FormatJSON, catalog.FormatYAML} {
		books, err := catalog.Parse([]byte("  \n"), f)
		if err != nil {
			t.Fatalf("Parse empty (%s): %v", f, err)
		}
		if len(books) != 0 {
			t.Errorf("expected 0 books, got %d", len(books))
		}
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := catalog.Parse([]byte(`[{"title": `), catalog.FormatJSON)
	if err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := catalog.Parse([]byte("a,b"), catalog.Format("csv"))
	if !errors.Is(err, catalog.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFormatFor(t *testing.T) {
	cases := []struct {
		in   string
		want catalog.Format
	}{
		{"books.json", catalog.FormatJSON},
		{"catalog.yml", catalog.FormatYAML},
		{"/data/Catalog.YAML", catalog.FormatYAML},
		{"https://example.com/books.yaml?v=2", catalog.FormatYAML},
		{"https://example.com/books", catalog.FormatJSON},
	}
	for _, c := range cases {
		if got := catalog.FormatFor(c.in); got != c.want {
			t.Errorf("FormatFor(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// --- Validate ---

func TestValidate_SkipsMalformed(t *testing.T) {
	books := []catalog.Book{
		{Title: "Ok", Author: "A", Country: "US", Language: "English", Year: 1900, Pages: 10},
		{Title: "No Author", Country: "US", Language: "English", Pages: 10},
		{Title: "Zero Pages", Author: "A", Country: "US", Language: "English"},
		{Title: "Year Zero", Author: "A", Country: "US", Language: "English", Year: 0, Pages: 1},
	}
	valid, rejected := catalog.Validate(books)
	if got := titles(valid); len(got) != 2 || got[0] != "Ok" || got[1] != "Year Zero" {
		t.Errorf("valid = %v", got)
	}
	if len(rejected) != 2 {
		t.Fatalf("expected 2 rejections, got %d", len(rejected))
	}
	if rejected[0].Index != 1 || len(rejected[0].Fields) != 1 || rejected[0].Fields[0] != "author" {
		t.Errorf("rejected[0] = %+v", rejected[0])
	}
	if rejected[1].Index != 2 || rejected[1].Fields[0] != "pages" {
		t.Errorf("rejected[1] = %+v", rejected[1])
	}
}

// --- Buckets ---

func TestCentury(t *testing.T) {
	cases := []struct{ year, want int }{
		{1, 1}, {100, 1}, {101, 2}, {1958, 20}, {2000, 20}, {2001, 21},
		{-1, -1}, {-50, -1}, {-100, -1}, {-101, -2}, {-1700, -17},
		{0, 0},
	}
	for _, c := range cases {
		if got := catalog.Century(c.year); got != c.want {
			t.Errorf("Century(%d) = %d, want %d", c.year, got, c.want)
		}
	}
}

func TestPageRange(t *testing.T) {
	cases := []struct{ pages, want int }{
		{1, 1}, {99, 1}, {100, 1}, {101, 2}, {200, 2}, {201, 3},
	}
	for _, c := range cases {
		if got := catalog.PageRange(c.pages); got != c.want {
			t.Errorf("PageRange(%d) = %d, want %d", c.pages, got, c.want)
		}
	}
}

func TestFormatPageRange(t *testing.T) {
	if got := catalog.FormatPageRange(1); got != "1-100 pages" {
		t.Errorf("FormatPageRange(1) = %q", got)
	}
	if got := catalog.FormatPageRange(2); got != "101-200 pages" {
		t.Errorf("FormatPageRange(2) = %q", got)
	}
}

func TestFormatCentury(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{1, "1st century CE"},
		{2, "2nd century CE"},
		{3, "3rd century CE"},
		{11, "11th century CE"},
		{21, "21st century CE"},
		{-8, "8th century BCE"},
		{-1, "1st century BCE"},
		{0, "Undated"},
	}
	for _, c := range cases {
		if got := catalog.FormatCentury(c.in); got != c.want {
			t.Errorf("FormatCentury(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatYear(t *testing.T) {
	for in, want := range map[int]string{1958: "1958", -735: "735 BCE", 0: "Undated"} {
		if got := catalog.FormatYear(in); got != want {
			t.Errorf("FormatYear(%d) = %q, want %q", in, got, want)
		}
	}
}

// --- Facets ---

func TestExtractFacets(t *testing.T) {
	f := catalog.ExtractFacets(sample(t))

	wantCountries := []string{"Greece", "Nigeria", "Sumer and Akkadian Empire", "United Kingdom"}
	if len(f.Countries) != len(wantCountries) {
		t.Fatalf("Countries = %v", f.Countries)
	}
	for i := range wantCountries {
		if f.Countries[i] != wantCountries[i] {
			t.Errorf("Countries[%d] = %q, want %q", i, f.Countries[i], wantCountries[i])
		}
	}

	if len(f.Languages) != 3 || f.Languages[0] != "Akkadian" || f.Languages[2] != "Greek" {
		t.Errorf("Languages = %v", f.Languages)
	}

	wantCenturies := []int{-17, -8, 17, 20}
	if len(f.Centuries) != len(wantCenturies) {
		t.Fatalf("Centuries = %v", f.Centuries)
	}
	for i := range wantCenturies {
		if f.Centuries[i] != wantCenturies[i] {
			t.Errorf("Centuries[%d] = %d, want %d", i, f.Centuries[i], wantCenturies[i])
		}
	}

	wantRanges := []int{2, 3, 7}
	if len(f.PageRanges) != len(wantRanges) {
		t.Fatalf("PageRanges = %v", f.PageRanges)
	}
	for i := range wantRanges {
		if f.PageRanges[i] != wantRanges[i] {
			t.Errorf("PageRanges[%d] = %d, want %d", i, f.PageRanges[i], wantRanges[i])
		}
	}
}

func TestExtractFacets_Empty(t *testing.T) {
	f := catalog.ExtractFacets(nil)
	if len(f.Countries)+len(f.Languages)+len(f.Centuries)+len(f.PageRanges) != 0 {
		t.Errorf("expected empty facets, got %+v", f)
	}
}

// --- Store ---

func TestNewStore_CopiesInput(t *testing.T) {
	books := sample(t)
	s := catalog.NewStore(books)
	books[0].Title = "mutated"
	if s.Books()[0].Title != "Things Fall Apart" {
		t.Errorf("store shares backing array with caller")
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
	if len(s.Facets().Countries) != 4 {
		t.Errorf("Facets not computed: %+v", s.Facets())
	}
}

func TestNewStore_Nil(t *testing.T) {
	s := catalog.NewStore(nil)
	if s.Books() == nil || s.Len() != 0 {
		t.Errorf("expected empty non-nil book list")
	}
}
