package tui

import (
	"strconv"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/tui/picker"
)

// Facet picker identities.
const (
	facetCountry   = "country"
	facetLanguage  = "language"
	facetCentury   = "century"
	facetPageRange = "pageRange"
)

var facetTitles = map[string]string{
	facetCountry:   "Country",
	facetLanguage:  "Language",
	facetCentury:   "Century",
	facetPageRange: "Pages",
}

var facetAllLabels = map[string]string{
	facetCountry:   "All Countries",
	facetLanguage:  "All Languages",
	facetCentury:   "All Centuries",
	facetPageRange: "All Page Ranges",
}

// facetOptions lists the choices for one facet, led by the "All" option
// which unsets it.
func facetOptions(facet string, f catalog.Facets) []picker.Option {
	opts := []picker.Option{{Label: facetAllLabels[facet]}}
	switch facet {
	case facetCountry:
		for _, c := range f.Countries {
			opts = append(opts, picker.Option{Label: c, Value: c})
		}
	case facetLanguage:
		for _, l := range f.Languages {
			opts = append(opts, picker.Option{Label: l, Value: l})
		}
	case facetCentury:
		for _, c := range f.Centuries {
			opts = append(opts, picker.Option{Label: catalog.FormatCentury(c), Value: strconv.Itoa(c)})
		}
	case facetPageRange:
		for _, r := range f.PageRanges {
			opts = append(opts, picker.Option{Label: catalog.FormatPageRange(r), Value: strconv.Itoa(r)})
		}
	}
	return opts
}

// facetValue returns the picker value for the facet's current setting.
func facetValue(facet string, f catalog.Filter) string {
	switch facet {
	case facetCountry:
		return f.Country
	case facetLanguage:
		return f.Language
	case facetCentury:
		return bucketValue(f.Century)
	case facetPageRange:
		return bucketValue(f.PageRange)
	}
	return ""
}

// withFacet returns f with one facet replaced by a picker value.
func withFacet(f catalog.Filter, facet, value string) catalog.Filter {
	switch facet {
	case facetCountry:
		f.Country = value
	case facetLanguage:
		f.Language = value
	case facetCentury:
		f.Century = parseBucket(value)
	case facetPageRange:
		f.PageRange = parseBucket(value)
	}
	return f
}

// facetLabel renders the facet's current setting for the status line.
func facetLabel(facet string, f catalog.Filter) string {
	switch facet {
	case facetCountry:
		if f.Country != "" {
			return f.Country
		}
	case facetLanguage:
		if f.Language != "" {
			return f.Language
		}
	case facetCentury:
		if f.Century != nil {
			return catalog.FormatCentury(*f.Century)
		}
	case facetPageRange:
		if f.PageRange != nil {
			return catalog.FormatPageRange(*f.PageRange)
		}
	}
	return "All"
}

func bucketValue(b *int) string {
	if b == nil {
		return ""
	}
	return strconv.Itoa(*b)
}

func parseBucket(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return catalog.Bucket(n)
}
