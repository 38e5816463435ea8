package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a catalog encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for encodings other than JSON and YAML.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// ParseFormat maps a name ("json", "yaml", "yml") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFor guesses the encoding of a path or URL from its extension.
// Anything that is not .yml/.yaml is treated as JSON.
func FormatFor(location string) Format {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	switch strings.ToLower(path.Ext(location)) {
	case ".yml", ".yaml":
		return FormatYAML
	}
	return FormatJSON
}

// Result is a loaded catalog plus the records that were dropped.
type Result struct {
	Books    []Book
	Rejected []Rejection
}

// Load fetches a catalog from src, decodes it, and drops invalid records.
func Load(ctx context.Context, src Source) (*Result, error) {
	data, format, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	books, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	valid, rejected := Validate(books)
	return &Result{Books: valid, Rejected: rejected}, nil
}

// Parse decodes catalog bytes into a book list.
func Parse(data []byte, format Format) ([]Book, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Book{}, nil
	}
	var books []Book
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &books); err != nil {
			return nil, fmt.Errorf("parsing catalog JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &books); err != nil {
			return nil, fmt.Errorf("parsing catalog YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if books == nil {
		return []Book{}, nil
	}
	return books, nil
}
