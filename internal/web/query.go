package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/view"
)

// Query string parameter names, shared by the API and the HTML page.
const (
	paramSearch    = "search"
	paramCountry   = "country"
	paramLanguage  = "language"
	paramCentury   = "century"
	paramPageRange = "pageRange"
	paramSort      = "sort"
	paramPage      = "page"
	paramPerPage   = "perPage"
)

// parseQuery builds a view query from request parameters, falling back to
// the server defaults. Malformed numbers are an error; an unknown sort key
// is not.
func (s *Server) parseQuery(r *http.Request) (view.Query, error) {
	v := r.URL.Query()
	q := view.Query{
		Filter: catalog.Filter{
			Search:   v.Get(paramSearch),
			Country:  v.Get(paramCountry),
			Language: v.Get(paramLanguage),
			SortBy:   s.opts.Sort,
		},
		Page:    1,
		PerPage: s.opts.PerPage,
		Locale:  s.opts.Locale,
	}

	if sortBy := v.Get(paramSort); sortBy != "" {
		q.Filter.SortBy = catalog.ParseSortKey(sortBy)
	}

	var err error
	if q.Filter.Century, err = bucketParam(v, paramCentury); err != nil {
		return q, err
	}
	if q.Filter.PageRange, err = bucketParam(v, paramPageRange); err != nil {
		return q, err
	}
	if raw := v.Get(paramPage); raw != "" {
		if q.Page, err = strconv.Atoi(raw); err != nil || q.Page < 1 {
			return q, fmt.Errorf("invalid %s %q", paramPage, raw)
		}
	}
	if raw := v.Get(paramPerPage); raw != "" {
		if q.PerPage, err = strconv.Atoi(raw); err != nil || q.PerPage < 1 {
			return q, fmt.Errorf("invalid %s %q", paramPerPage, raw)
		}
	}
	return q, nil
}

func bucketParam(v url.Values, name string) (*int, error) {
	raw := v.Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return catalog.Bucket(n), nil
}

// encodeQuery is the inverse of parseQuery for the parts a link carries.
func encodeQuery(q view.Query) url.Values {
	v := url.Values{}
	f := q.Filter
	if f.Search != "" {
		v.Set(paramSearch, f.Search)
	}
	if f.Country != "" {
		v.Set(paramCountry, f.Country)
	}
	if f.Language != "" {
		v.Set(paramLanguage, f.Language)
	}
	if f.Century != nil {
		v.Set(paramCentury, strconv.Itoa(*f.Century))
	}
	if f.PageRange != nil {
		v.Set(paramPageRange, strconv.Itoa(*f.PageRange))
	}
	v.Set(paramSort, string(f.SortBy))
	v.Set(paramPerPage, strconv.Itoa(q.PerPage))
	if q.Page > 1 {
		v.Set(paramPage, strconv.Itoa(q.Page))
	}
	return v
}
