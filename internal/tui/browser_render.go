package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/view"
	"github.com/charmbracelet/lipgloss"
)

// chromeLines is the number of lines around the table: header, search,
// filters, column titles, page bar, status, divider, footer and borders.
const chromeLines = 16

func (m BrowserModel) renderDetailsPane(width int) string {
	if m.cursor >= len(m.result.Items) {
		return ""
	}
	b := m.result.Items[m.cursor]

	// Account for label widths (e.g., "Language: " is 10 chars)
	const labelWidth = 10
	maxTextWidth := max(width-2-labelWidth, 10)

	detailsStyle := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(StyleHeader.Render("Book Details"))
	s.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		s.WriteString(StyleHighlight.Render(label + ": "))
		s.WriteString(truncateText(value, maxTextWidth))
		s.WriteString("\n\n")
	}

	field("Title", b.Title)
	field("Author", b.Author)
	field("Year", catalog.FormatYear(b.Year))
	field("Century", catalog.FormatCentury(b.Century()))
	field("Country", b.Country)
	field("Language", b.Language)
	field("Pages", strconv.Itoa(b.Pages))
	field("Link", b.Link)
	field("Image", b.ImageLink)

	return detailsStyle.Render(strings.TrimRight(s.String(), "\n"))
}

// renderFilters shows the active facets, sort key and page size.
func (m BrowserModel) renderFilters() string {
	f := m.session.Filter()
	parts := []string{
		"Country: " + StyleFacet.Render(facetLabel(facetCountry, f)),
		"Language: " + StyleFacet.Render(facetLabel(facetLanguage, f)),
		"Century: " + StyleFacet.Render(facetLabel(facetCentury, f)),
		"Pages: " + StyleFacet.Render(facetLabel(facetPageRange, f)),
		"Sort: " + StyleFacet.Render(string(f.SortBy)),
		"Per page: " + StyleFacet.Render(strconv.Itoa(m.session.PerPage())),
	}
	line := strings.Join(parts, StyleHelp.Render(" · "))
	if f.HasConstraints() {
		line += "  " + StyleHelp.Render("(x to clear)")
	}
	return line
}

// renderTable draws the visible rows of the current page, scrolled so the
// cursor stays on screen.
func (m BrowserModel) renderTable(width int) string {
	if m.result.Empty() {
		return StyleHeader.Render("No books found") + "\n" +
			StyleHelp.Render("Try adjusting your search or filters")
	}

	cols := computeColumnWidths(width)
	items := m.result.Items
	start, end := 0, len(items)
	if m.height > 0 {
		visible := max(m.height-chromeLines, 3)
		if len(items) > visible {
			start = max(m.cursor-visible+1, 0)
			end = start + visible
		}
	}

	lines := []string{renderHeaderRow(cols)}
	for i := start; i < end; i++ {
		lines = append(lines, renderBookRow(items[i], cols, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

// renderPageBar renders first/prev, the page-number window, next/last and
// the "Page X of Y" status. Controls that cannot move are dimmed.
func renderPageBar(r view.Result) string {
	if r.TotalPages == 0 {
		return ""
	}
	nav := r.Nav()
	control := func(label string, target func() (int, bool)) string {
		if _, ok := target(); ok {
			return StyleNormal.Render(label)
		}
		return StyleDisabled.Render(label)
	}

	parts := []string{control("«", nav.First), control("‹", nav.Prev)}
	for _, e := range r.PageNumbers {
		switch {
		case e.Ellipsis:
			parts = append(parts, StyleHelp.Render(e.String()))
		case e.Page == r.Page:
			parts = append(parts, StyleCurrentPage.Render(e.String()))
		default:
			parts = append(parts, StyleNormal.Render(e.String()))
		}
	}
	parts = append(parts, control("›", nav.Next), control("»", nav.Last))

	status := StyleHelp.Render(fmt.Sprintf("Page %d of %d", r.Page, r.TotalPages))
	return strings.Join(parts, " ") + "   " + status
}

// renderFooter creates a footer with all available keyboard shortcuts.
// The shortcut matching activeCmd is rendered with StyleHighlight.
func (m BrowserModel) renderFooter() string {
	return RenderFooterBar(m.keys.footer(), m.activeCmd)
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	outerStyle := lipgloss.NewStyle().Padding(1, 2)
	masterStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTeal).
		Padding(0, 1)

	innerWidth := 100
	if m.width > 0 {
		innerWidth = max(m.width-(2*2)-2-2, 60) // outer padding + border + inner padding
		masterStyle = masterStyle.Width(innerWidth)
	}

	if m.picker != nil {
		return outerStyle.Render(masterStyle.Render(m.picker.View()))
	}

	count := StyleCount.Render(fmt.Sprintf("%d of %d books", m.result.TotalItems, m.session.Store().Len()))
	header := StyleHeader.Render("Book List") + "  " + count

	tableWidth := innerWidth
	var mainContent string
	if m.showDetails && !m.result.Empty() {
		detailsWidth := max(innerWidth*4/10, 30)
		tableWidth = innerWidth - detailsWidth - 1
		listStyle := lipgloss.NewStyle().
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorTeal)
		mainContent = lipgloss.JoinHorizontal(
			lipgloss.Top,
			listStyle.Render(m.renderTable(tableWidth)),
			m.renderDetailsPane(detailsWidth),
		)
	} else {
		mainContent = m.renderTable(tableWidth)
	}

	divider := lipgloss.NewStyle().
		Foreground(ColorTeal).
		Render(strings.Repeat("─", innerWidth))

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.search.View(),
		m.renderFilters(),
		"",
		mainContent,
		"",
		renderPageBar(m.result),
		divider,
		m.renderFooter(),
	)
	return outerStyle.Render(masterStyle.Render(content))
}
