package tui

import (
	"strconv"
	"strings"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Column width constraints
const (
	minTitleWidth    = 12
	maxTitleWidth    = 48
	minAuthorWidth   = 8
	maxAuthorWidth   = 26
	minCountryWidth  = 6
	maxCountryWidth  = 18
	minLanguageWidth = 6
	maxLanguageWidth = 14
	yearWidth        = 9 // "1700 BCE" plus slack
	pagesWidth       = 5
	columnGap        = 1
	rowPrefixWidth   = 2
)

// columns holds the widths of the book table.
type columns struct {
	title, author, country, language, year, pages int
}

// computeColumnWidths distributes available width proportionally across columns.
// Year and pages are fixed; the text columns share what is left.
func computeColumnWidths(totalWidth int) columns {
	c := columns{year: yearWidth, pages: pagesWidth}
	gaps := columnGap * 5
	usable := totalWidth - rowPrefixWidth - gaps - c.year - c.pages
	if usable < minTitleWidth+minAuthorWidth+minCountryWidth+minLanguageWidth {
		c.title, c.author, c.country, c.language = minTitleWidth, minAuthorWidth, minCountryWidth, minLanguageWidth
		return c
	}

	c.title = min(usable*40/100, maxTitleWidth)
	remaining := usable - c.title
	c.author = min(remaining*45/100, maxAuthorWidth)
	c.country = min(remaining*30/100, maxCountryWidth)
	c.language = min(remaining-c.author-c.country, maxLanguageWidth)

	c.title = max(c.title, minTitleWidth)
	c.author = max(c.author, minAuthorWidth)
	c.country = max(c.country, minCountryWidth)
	c.language = max(c.language, minLanguageWidth)
	return c
}

// padOrTruncate pads s to exactly width cells, truncating with "…" if necessary.
// Widths are display cells, so wide runes and escape sequences align correctly.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	n := ansi.StringWidth(s)
	if n > width {
		return ansi.Truncate(s, width, "…")
	}
	if n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// truncateText shortens s to maxWidth cells with "…", without padding.
func truncateText(s string, maxWidth int) string {
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// padLeft right-aligns s in width cells.
func padLeft(s string, width int) string {
	if n := ansi.StringWidth(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// renderHeaderRow renders the column titles.
func renderHeaderRow(c columns) string {
	gap := strings.Repeat(" ", columnGap)
	line := strings.Repeat(" ", rowPrefixWidth) +
		padOrTruncate("Title", c.title) + gap +
		padOrTruncate("Author", c.author) + gap +
		padOrTruncate("Country", c.country) + gap +
		padOrTruncate("Language", c.language) + gap +
		padLeft("Year", c.year) + gap +
		padLeft("Pages", c.pages)
	return StyleHelp.Bold(true).Render(line)
}

// renderBookRow renders one book with fixed-width columns.
func renderBookRow(b catalog.Book, c columns, isCursor bool) string {
	gap := strings.Repeat(" ", columnGap)

	prefix := "  "
	if isCursor {
		prefix = lipgloss.NewStyle().Foreground(ColorOrange).Render("›") + " "
	}

	titleCol := padOrTruncate(b.Title, c.title)
	authorCol := padOrTruncate(b.Author, c.author)
	countryCol := padOrTruncate(b.Country, c.country)
	languageCol := padOrTruncate(b.Language, c.language)
	yearCol := padLeft(catalog.FormatYear(b.Year), c.year)
	pagesCol := padLeft(strconv.Itoa(b.Pages), c.pages)

	var titleStyled, authorStyled, countryStyled, languageStyled, numStyled lipgloss.Style
	if isCursor {
		titleStyled = StyleHighlight
		authorStyled = lipgloss.NewStyle().Foreground(ColorOrange).Faint(true)
		countryStyled = lipgloss.NewStyle().Foreground(ColorTealLight)
		languageStyled = countryStyled
		numStyled = StyleHighlight
	} else {
		titleStyled = StyleNormal
		authorStyled = StyleHelp
		countryStyled = StyleFacet
		languageStyled = StyleFacet
		numStyled = StyleHelp
	}

	return prefix +
		titleStyled.Render(titleCol) + gap +
		authorStyled.Render(authorCol) + gap +
		countryStyled.Render(countryCol) + gap +
		languageStyled.Render(languageCol) + gap +
		numStyled.Render(yearCol) + gap +
		numStyled.Render(pagesCol)
}
