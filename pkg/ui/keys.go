package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the viewer. Bindings are context
// sensitive: the same key can mean different things on different pages.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Open   key.Binding // open detail, follow a link
	Toggle key.Binding // expand or collapse a row
	Select key.Binding // row checkbox
	Back   key.Binding

	// View switching on a board page
	NextView      key.Binding
	PrevView      key.Binding
	ViewTable     key.Binding
	ViewKanban    key.Binding
	ViewWorkItems key.Binding

	CollapseGroup key.Binding
	AddItem       key.Binding
	Drag          key.Binding
	Search        key.Binding

	// Work Items view
	NextSet  key.Binding
	PrevSet  key.Binding
	Filter   key.Binding
	ClearCol key.Binding
	ClearAll key.Binding

	// Detail overlay
	Comment key.Binding
	Edit    key.Binding
	Follow  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Copy    key.Binding
	Submit  key.Binding

	// Chrome
	Sidebar       key.Binding
	Jump          key.Binding
	Notifications key.Binding
	Profile       key.Binding
	Members       key.Binding
	NewBoard      key.Binding
	NewWorkspace  key.Binding
	Stats         key.Binding
	Home          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap is the built-in binding set: vim-style movement alongside
// arrow keys.
var DefaultKeyMap = KeyMap{
	Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
	Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),

	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "expand")),
	Select: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "select")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

	NextView:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
	PrevView:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
	ViewTable:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "main table")),
	ViewKanban:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "kanban")),
	ViewWorkItems: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "work items")),

	CollapseGroup: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse group")),
	AddItem:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
	Drag:          key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "pick up/drop")),
	Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),

	NextSet:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next set")),
	PrevSet:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev set")),
	Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "edit filters")),
	ClearCol: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear filter")),
	ClearAll: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear all filters")),

	Comment: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit description")),
	Follow:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "follow")),
	NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy id")),
	Submit:  key.NewBinding(key.WithKeys("ctrl+s", "ctrl+j"), key.WithHelp("ctrl+s", "submit")),

	Sidebar:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "sidebar")),
	Jump:          key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "jump to board")),
	Notifications: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "notifications")),
	Profile:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
	Members:       key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "members")),
	NewBoard:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new board")),
	NewWorkspace:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new workspace")),
	Stats:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
	Home:          key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "home")),
	Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap for the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.NextView, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help overlay
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Open, k.Toggle, k.Select, k.Back},
		{k.NextView, k.PrevView, k.ViewTable, k.ViewKanban, k.ViewWorkItems, k.CollapseGroup, k.AddItem, k.Drag, k.Search},
		{k.NextSet, k.PrevSet, k.Filter, k.ClearCol, k.ClearAll},
		{k.Comment, k.Edit, k.Follow, k.NextTab, k.PrevTab, k.Copy, k.Submit},
		{k.Sidebar, k.Jump, k.Notifications, k.Profile, k.Members, k.NewBoard, k.NewWorkspace, k.Stats, k.Home, k.Help, k.Quit},
	}
}
