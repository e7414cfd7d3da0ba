package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/model"
	"github.com/workboard/wb/pkg/route"
)

// NavigateMsg asks the app to show another page. The current page's local
// state is discarded.
type NavigateMsg struct {
	Route route.Route
}

// OpenDetailMsg asks the app to open the detail overlay for an item
type OpenDetailMsg struct {
	Item model.WorkItem
}

// StoreReloadedMsg replaces the store wholesale. Every page and overlay is
// rebuilt from the new store.
type StoreReloadedMsg struct {
	Store *loader.Store
}

// StoreReloadFailedMsg reports a fixtures file that could not be reloaded.
// The previous store stays in use.
type StoreReloadFailedMsg struct {
	Err error
}

// clipboardMsg reports the outcome of a copy
type clipboardMsg struct {
	text string
	err  error
}

func navigateCmd(r route.Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r} }
}

func openDetailCmd(item model.WorkItem) tea.Cmd {
	return func() tea.Msg { return OpenDetailMsg{Item: item} }
}
