package tui

import "github.com/charmbracelet/bubbles/key"

// browserKeys are the bindings of the book browser.
type browserKeys struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Search   key.Binding
	Details  key.Binding
	Country  key.Binding
	Language key.Binding
	Century  key.Binding
	Pages    key.Binding
	Sort     key.Binding
	PerPage  key.Binding
	Clear    key.Binding
	First    key.Binding
	Prev     key.Binding
	Next     key.Binding
	Last     key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Details: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab", "details"),
		),
		Country: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "country"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "language"),
		),
		Century: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "century"),
		),
		Pages: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "pages"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		PerPage: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "per page"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "pgup", "h"),
			key.WithHelp("←", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "pgdown", "n"),
			key.WithHelp("→", "next"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last"),
		),
	}
}

// footer lists the shortcuts shown under the browser. Keys double as the
// activeCmd values set by Update.
func (k browserKeys) footer() []ShortcutEntry {
	entries := []ShortcutEntry{{Key: "", Label: "↑/↓ navigate"}}
	for _, b := range []key.Binding{k.Search, k.Country, k.Language, k.Century, k.Pages, k.Sort, k.PerPage, k.Clear, k.Prev, k.Next, k.Details, k.Quit} {
		h := b.Help()
		entries = append(entries, ShortcutEntry{Key: h.Key, Label: h.Key + " " + h.Desc})
	}
	return entries
}
