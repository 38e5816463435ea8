package catalog

import "fmt"

// PageRangeSize is the width of one page-range bucket.
const PageRangeSize = 100

// Century maps a signed year to its century bucket. Negative years (BCE)
// yield negative buckets: -1..-100 is -1, -101..-200 is -2. Year 0 maps to
// bucket 0.
func Century(year int) int {
	if year < 0 {
		return -ceilDiv(-year, 100)
	}
	return ceilDiv(year, 100)
}

// PageRange maps a page count to its bucket: 1-100 is 1, 101-200 is 2.
func PageRange(pages int) int {
	return ceilDiv(pages, PageRangeSize)
}

// PageRangeBounds returns the inclusive page bounds covered by a bucket.
func PageRangeBounds(bucket int) (lo, hi int) {
	return (bucket-1)*PageRangeSize + 1, bucket * PageRangeSize
}

// FormatCentury renders a century bucket for display, e.g. "19th century CE"
// or "5th century BCE".
func FormatCentury(c int) string {
	switch {
	case c == 0:
		return "Undated"
	case c < 0:
		return fmt.Sprintf("%d%s century BCE", -c, ordinalSuffix(-c))
	default:
		return fmt.Sprintf("%d%s century CE", c, ordinalSuffix(c))
	}
}

// FormatPageRange renders a page-range bucket for display, e.g. "101-200 pages".
func FormatPageRange(bucket int) string {
	lo, hi := PageRangeBounds(bucket)
	return fmt.Sprintf("%d-%d pages", lo, hi)
}

// FormatYear renders a signed year for display: "1958", "735 BCE", or
// "Undated" for 0.
func FormatYear(year int) string {
	switch {
	case year == 0:
		return "Undated"
	case year < 0:
		return fmt.Sprintf("%d BCE", -year)
	default:
		return fmt.Sprintf("%d", year)
	}
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// ceilDiv is integer division rounding toward positive infinity.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
