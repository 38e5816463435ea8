// Package pager splits result lists into pages and builds the page-number
// bar shown under them.
package pager

import (
	"encoding/json"
	"slices"
	"strconv"
)

// DefaultPerPage is the page size used when none is chosen.
const DefaultPerPage = 20

// Presets are the page sizes offered to the user.
var Presets = []int{20, 50, 100}

// delta is how many pages either side of the current page the bar shows.
const delta = 2

// EllipsisLabel marks a collapsed run of page numbers.
const EllipsisLabel = "..."

// TotalPages returns ceil(total/perPage), or 0 when there is nothing to show.
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	n := total / perPage
	if total%perPage != 0 {
		n++
	}
	return n
}

// Slice returns the items shown on page (1-based). Out-of-range pages yield
// an empty slice, never an error. The result shares the input's backing
// array.
func Slice[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage <= 0 {
		return items[:0:0]
	}
	if page-1 >= TotalPages(len(items), perPage) {
		return items[:0:0]
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(items))
	return items[start:end:end]
}

// NextPreset returns the preset after perPage, wrapping around. Values that
// are not presets move to the first preset.
func NextPreset(perPage int) int {
	i := slices.Index(Presets, perPage)
	return Presets[(i+1)%len(Presets)]
}

// Entry is one slot in the page-number bar: a page number or an ellipsis.
type Entry struct {
	Page     int
	Ellipsis bool
}

// String renders the entry as it appears in the bar.
func (e Entry) String() string {
	if e.Ellipsis {
		return EllipsisLabel
	}
	return strconv.Itoa(e.Page)
}

// MarshalJSON encodes a page as a number and an ellipsis as "...".
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Ellipsis {
		return json.Marshal(EllipsisLabel)
	}
	return json.Marshal(e.Page)
}

// UnmarshalJSON accepts either form written by MarshalJSON.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = Entry{Ellipsis: true}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*e = Entry{Page: n}
	return nil
}

// MarshalYAML encodes an entry the same way MarshalJSON does.
func (e Entry) MarshalYAML() (any, error) {
	if e.Ellipsis {
		return EllipsisLabel, nil
	}
	return e.Page, nil
}

func page(n int) Entry { return Entry{Page: n} }

var ellipsis = Entry{Ellipsis: true}

// Window builds the page-number bar: page 1, up to two pages either side of
// current, and the last page, with gaps collapsed into a single ellipsis.
// It returns nil when there is at most one page. Out-of-range values of
// current are clamped first.
func Window(current, total int) []Entry {
	if total <= 1 {
		return nil
	}
	current = Clamp(current, total)

	out := []Entry{page(1)}
	if current-delta > 2 {
		out = append(out, ellipsis)
	}
	for i := max(2, current-delta); i <= min(total-1, current+delta); i++ {
		out = append(out, page(i))
	}
	if current+delta < total-1 {
		out = append(out, ellipsis)
	}
	out = append(out, page(total))
	return out
}

// Clamp limits page to [1, total]. With no pages it returns 1.
func Clamp(page, total int) int {
	if total < 1 || page < 1 {
		return 1
	}
	return min(page, total)
}
