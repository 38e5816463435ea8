package catalog

// Book is one record in the catalog (books.json or catalog.yml).
type Book struct {
	Title     string `json:"title" yaml:"title" validate:"required"`
	Author    string `json:"author" yaml:"author" validate:"required"`
	Country   string `json:"country" yaml:"country" validate:"required"`
	Language  string `json:"language" yaml:"language" validate:"required"`
	Year      int    `json:"year" yaml:"year"`
	Pages     int    `json:"pages" yaml:"pages" validate:"gt=0"`
	Link      string `json:"link,omitempty" yaml:"link,omitempty"`
	ImageLink string `json:"imageLink,omitempty" yaml:"imageLink,omitempty"`
}

// Century returns the book's century bucket.
func (b Book) Century() int {
	return Century(b.Year)
}

// PageRange returns the book's page-range bucket.
func (b Book) PageRange() int {
	return PageRange(b.Pages)
}
