package tui

import (
	"fmt"

	"github.com/blackwell-systems/booklist/internal/pager"
	"github.com/blackwell-systems/booklist/internal/tui/picker"
	"github.com/blackwell-systems/booklist/internal/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BrowserModel is the interactive book browser. All browsing state lives in
// the view.Session; the model only adds cursor, focus and layout.
type BrowserModel struct {
	session *view.Session
	result  view.Result
	keys    browserKeys

	search    textinput.Model
	searching bool
	picker    *picker.Model

	cursor      int
	showDetails bool
	width       int
	height      int
	activeCmd   string
	quitting    bool
}

// NewBrowserModel creates a browser over session.
func NewBrowserModel(session *view.Session) BrowserModel {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "title, author or country"
	ti.SetValue(session.Filter().Search)

	m := BrowserModel{
		session: session,
		keys:    newBrowserKeys(),
		search:  ti,
	}
	m.refresh()
	return m
}

// Result returns the page currently displayed.
func (m BrowserModel) Result() view.Result { return m.result }

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.picker != nil {
			m.picker.SetSize(m.pickerSize())
		}
		return m, nil

	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case picker.SelectedMsg:
		m.picker = nil
		m.session.SetFilter(withFacet(m.session.Filter(), msg.ID, msg.Option.Value))
		m.refresh()
		return m, nil

	case picker.CanceledMsg:
		m.picker = nil
		return m, nil
	}

	if m.picker != nil {
		p, cmd := m.picker.Update(msg)
		m.picker = &p
		return m, cmd
	}

	if m.searching {
		return m.updateSearch(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// updateSearch feeds keys to the search box. Every edit re-runs the query.
func (m BrowserModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter", "esc", "tab":
			m.searching = false
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.session.SetSearch(v)
		m.refresh()
	}
	return m, cmd
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.result.Items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Details):
		m.showDetails = !m.showDetails
		return m.highlight(m.keys.Details)

	case key.Matches(msg, m.keys.Country):
		return m.openPicker(facetCountry)
	case key.Matches(msg, m.keys.Language):
		return m.openPicker(facetLanguage)
	case key.Matches(msg, m.keys.Century):
		return m.openPicker(facetCentury)
	case key.Matches(msg, m.keys.Pages):
		return m.openPicker(facetPageRange)

	case key.Matches(msg, m.keys.Sort):
		m.session.SetSort(m.session.Filter().SortBy.Next())
		m.refresh()
		return m.highlight(m.keys.Sort)

	case key.Matches(msg, m.keys.PerPage):
		m.session.SetPerPage(pager.NextPreset(m.session.PerPage()))
		m.refresh()
		return m.highlight(m.keys.PerPage)

	case key.Matches(msg, m.keys.Clear):
		if !m.session.Filter().HasConstraints() {
			return m, nil
		}
		m.session.ClearFilters()
		m.refresh()
		return m.highlight(m.keys.Clear)

	case key.Matches(msg, m.keys.First):
		return m.turn(m.session.First, m.keys.First)
	case key.Matches(msg, m.keys.Prev):
		return m.turn(m.session.Prev, m.keys.Prev)
	case key.Matches(msg, m.keys.Next):
		return m.turn(m.session.Next, m.keys.Next)
	case key.Matches(msg, m.keys.Last):
		return m.turn(m.session.Last, m.keys.Last)
	}
	return m, nil
}

// turn applies a page move. Disabled moves are ignored.
func (m BrowserModel) turn(move func() bool, b key.Binding) (tea.Model, tea.Cmd) {
	if !move() {
		return m, nil
	}
	m.refresh()
	return m.highlight(b)
}

func (m BrowserModel) highlight(b key.Binding) (tea.Model, tea.Cmd) {
	m.activeCmd = b.Help().Key
	return m, HighlightCmd()
}

func (m BrowserModel) openPicker(facet string) (tea.Model, tea.Cmd) {
	f := m.session.Filter()
	p := picker.New(
		facet,
		fmt.Sprintf("Filter by %s", facetTitles[facet]),
		facetOptions(facet, m.session.Store().Facets()),
		facetValue(facet, f),
		picker.Styles{
			Cursor:   StyleHighlight,
			Normal:   StyleNormal,
			Current:  StyleFacet,
			Title:    StyleHeader,
			HelpText: StyleHelp,
		},
	)
	if m.width > 0 && m.height > 0 {
		p.SetSize(m.pickerSize())
	}
	m.picker = &p
	return m, nil
}

func (m BrowserModel) pickerSize() (int, int) {
	return max(m.width-12, 30), max(m.height-10, 8)
}

// refresh recomputes the page and keeps the cursor on it.
func (m *BrowserModel) refresh() {
	prev := m.result.Page
	m.result = m.session.Result()
	if m.result.Page != prev {
		m.cursor = 0
	}
	if m.cursor >= len(m.result.Items) {
		m.cursor = max(len(m.result.Items)-1, 0)
	}
}

// RunBrowser launches the interactive browser and blocks until the user
// quits.
func RunBrowser(session *view.Session) error {
	p := tea.NewProgram(NewBrowserModel(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
