package catalog

import "slices"

// Facets lists the distinct values present for each filterable dimension,
// in ascending order.
type Facets struct {
	Countries  []string `json:"countries" yaml:"countries"`
	Languages  []string `json:"languages" yaml:"languages"`
	Centuries  []int    `json:"centuries" yaml:"centuries"`
	PageRanges []int    `json:"pageRanges" yaml:"pageRanges"`
}

// ExtractFacets computes the facet values present in books.
func ExtractFacets(books []Book) Facets {
	countries := make(map[string]struct{})
	languages := make(map[string]struct{})
	centuries := make(map[int]struct{})
	ranges := make(map[int]struct{})

	for _, b := range books {
		countries[b.Country] = struct{}{}
		languages[b.Language] = struct{}{}
		centuries[b.Century()] = struct{}{}
		ranges[b.PageRange()] = struct{}{}
	}

	return Facets{
		Countries:  sortedKeys(countries),
		Languages:  sortedKeys(languages),
		Centuries:  sortedKeys(centuries),
		PageRanges: sortedKeys(ranges),
	}
}

func sortedKeys[K string | int](m map[K]struct{}) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
