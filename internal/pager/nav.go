package pager

// Nav computes the targets of the first/previous/next/last controls.
// Each method returns the target page and whether the control is enabled;
// a disabled control returns the current page.
type Nav struct {
	Current int
	Total   int
}

// First returns page 1, disabled when already there.
func (n Nav) First() (int, bool) {
	return n.target(1)
}

// Prev returns the previous page, disabled on page 1.
func (n Nav) Prev() (int, bool) {
	if n.Current > n.Total {
		return n.target(n.Total)
	}
	if n.Current <= 1 {
		return n.target(1)
	}
	return n.target(n.Current - 1)
}

// Next returns the following page, disabled on the last page.
func (n Nav) Next() (int, bool) {
	if n.Current >= n.Total {
		return n.target(n.Total)
	}
	return n.target(n.Current + 1)
}

// Last returns the last page, disabled when already there.
func (n Nav) Last() (int, bool) {
	return n.target(n.Total)
}

// Go returns page clamped to the valid range, disabled when that is the
// current page.
func (n Nav) Go(page int) (int, bool) {
	return n.target(page)
}

func (n Nav) target(p int) (int, bool) {
	if n.Total < 1 {
		return n.Current, false
	}
	p = Clamp(p, n.Total)
	if p == n.Current {
		return n.Current, false
	}
	return p, true
}
