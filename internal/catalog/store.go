package catalog

import (
	"context"
	"log/slog"
	"slices"
)

// Store holds the catalog for a session. It is immutable after creation and
// safe to share between goroutines.
type Store struct {
	books  []Book
	facets Facets
	source string
}

// NewStore wraps a book list. The list is copied and facets are computed
// once.
func NewStore(books []Book) *Store {
	books = slices.Clone(books)
	if books == nil {
		books = []Book{}
	}
	return &Store{
		books:  books,
		facets: ExtractFacets(books),
	}
}

// Open loads the catalog from src. Loading never fails the caller: errors are
// logged and yield an empty store. Dropped records are logged individually.
func Open(ctx context.Context, src Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	res, err := Load(ctx, src)
	if err != nil {
		logger.Error("Error loading books", "source", src.String(), "error", err)
		s := NewStore(nil)
		s.source = src.String()
		return s
	}

	for _, r := range res.Rejected {
		logger.Warn("Skipping malformed book record",
			"index", r.Index,
			"title", r.Title,
			"fields", r.Fields,
		)
	}

	s := NewStore(res.Books)
	s.source = src.String()
	logger.Info("Catalog loaded",
		"source", s.source,
		"books", len(s.books),
		"skipped", len(res.Rejected),
	)
	return s
}

// Books returns the catalog in source order. Callers must not modify the
// returned slice.
func (s *Store) Books() []Book {
	return s.books
}

// Len returns the number of books.
func (s *Store) Len() int {
	return len(s.books)
}

// Facets returns the facet values computed at load time.
func (s *Store) Facets() Facets {
	return s.facets
}

// Source describes where the catalog came from, or "" if built in memory.
func (s *Store) Source() string {
	return s.source
}
