package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Common source errors.
var (
	// ErrNotFound is returned when the catalog file or URL does not exist.
	ErrNotFound = errors.New("catalog not found")
	// ErrForbidden is returned when the server refuses access to the catalog.
	ErrForbidden = errors.New("catalog access forbidden")
)

// maxCatalogBytes bounds how much of a remote catalog is read.
const maxCatalogBytes = 64 << 20

// Source yields raw catalog bytes and their encoding.
type Source interface {
	Fetch(ctx context.Context) ([]byte, Format, error)
	String() string
}

// NewSource returns an HTTP source for http(s) URLs and a file source for
// everything else. An empty format is guessed from the location.
func NewSource(location string, format Format, timeout time.Duration) Source {
	if format == "" {
		format = FormatFor(location)
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, format, timeout)
	}
	return FileSource{Path: location, Format: format}
}

// FileSource reads a catalog from local disk.
type FileSource struct {
	Path   string
	Format Format
}

// Fetch implements Source.
func (s FileSource) Fetch(ctx context.Context) ([]byte, Format, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return nil, "", fmt.Errorf("reading catalog: %w", err)
	}
	return data, s.Format, nil
}

func (s FileSource) String() string { return s.Path }

// HTTPSource fetches a catalog with a single GET. There is no retry.
type HTTPSource struct {
	URL    string
	Format Format
	http   *http.Client
}

// NewHTTPSource creates an HTTPSource. A zero timeout means no timeout.
func NewHTTPSource(url string, format Format, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Format: format,
		http:   &http.Client{Timeout: timeout},
	}
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, Format, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return nil, "", err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, "", fmt.Errorf("reading catalog response: %w", err)
	}
	return data, s.Format, nil
}

func (s *HTTPSource) String() string { return s.URL }

// checkStatus returns a typed error for non-2xx responses.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Request.URL)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catalog server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
