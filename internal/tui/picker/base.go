// Package picker is a single-choice list overlay used by the browser to pick
// a facet value. It runs inside a parent bubbletea model and reports the
// outcome with SelectedMsg or CanceledMsg.
package picker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option is one choice. An empty Value means "no constraint".
type Option struct {
	Label string
	Value string
}

// FilterValue implements list.Item.
func (o Option) FilterValue() string { return o.Label }

// SelectedMsg is sent when the user confirms an option.
type SelectedMsg struct {
	ID     string // caller-supplied picker identity
	Option Option
}

// CanceledMsg is sent when the user backs out without choosing.
type CanceledMsg struct {
	ID string
}

// Styles controls how options are drawn.
type Styles struct {
	Cursor   lipgloss.Style
	Normal   lipgloss.Style
	Current  lipgloss.Style // the option matching the active value
	Title    lipgloss.Style
	HelpText lipgloss.Style
}

// Keys are the picker's bindings.
type Keys struct {
	Select key.Binding
	Cancel key.Binding
}

// DefaultKeys returns enter to select and esc/q to cancel.
func DefaultKeys() Keys {
	return Keys{
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

const (
	defaultWidth  = 60
	defaultHeight = 16
)

// Model is a picker over a fixed set of options.
type Model struct {
	id     string
	list   list.Model
	keys   Keys
	styles Styles
}

// New creates a picker. The cursor starts on the option whose value equals
// current, if any.
func New(id, title string, options []Option, current string, styles Styles) Model {
	items := make([]list.Item, len(options))
	start := 0
	for i, o := range options {
		items[i] = o
		if o.Value == current {
			start = i
		}
	}

	m := Model{id: id, keys: DefaultKeys(), styles: styles}

	l := list.New(items, optionDelegate{current: current, styles: styles}, defaultWidth, defaultHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.Styles.Title = styles.Title
	l.Select(start)
	m.list = l
	return m
}

// ID returns the identity passed to New.
func (m Model) ID() string { return m.id }

// Selected returns the option under the cursor.
func (m Model) Selected() (Option, bool) {
	o, ok := m.list.SelectedItem().(Option)
	return o, ok
}

// SetSize sets the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Update handles keys. Select and cancel are turned into messages for the
// parent; everything else goes to the list. While a filter is applied the
// cancel key clears it instead of closing the picker.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, m.keys.Select):
			if o, ok := m.Selected(); ok {
				id := m.id
				return m, func() tea.Msg { return SelectedMsg{ID: id, Option: o} }
			}
			return m, nil
		case key.Matches(km, m.keys.Cancel) && m.list.FilterState() == list.Unfiltered:
			id := m.id
			return m, func() tea.Msg { return CanceledMsg{ID: id} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list with a one-line key hint.
func (m Model) View() string {
	hint := m.styles.HelpText.Render(fmt.Sprintf("%s %s · %s %s · / filter",
		m.keys.Select.Help().Key, m.keys.Select.Help().Desc,
		m.keys.Cancel.Help().Key, m.keys.Cancel.Help().Desc))
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), hint)
}

// optionDelegate draws one option per line.
type optionDelegate struct {
	current string
	styles  Styles
}

func (d optionDelegate) Height() int                               { return 1 }
func (d optionDelegate) Spacing() int                              { return 0 }
func (d optionDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	o, ok := item.(Option)
	if !ok {
		return
	}
	label := o.Label
	if o.Value == d.current {
		label += " ✓"
	}
	switch {
	case index == m.Index():
		_, _ = fmt.Fprint(w, d.styles.Cursor.Render("› "+label))
	case o.Value == d.current:
		_, _ = fmt.Fprint(w, "  "+d.styles.Current.Render(label))
	default:
		_, _ = fmt.Fprint(w, "  "+d.styles.Normal.Render(label))
	}
}
