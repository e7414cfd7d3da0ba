package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// printHeight is the page height assumed by one-shot output
const printHeight = 200

// Print renders the page of opts.Route once to w, without chrome or
// cursor highlights. When the route does not resolve the not-found page
// is written and the resolve error returned.
func Print(w io.Writer, opts Options, width int) error {
	if opts.Theme == nil {
		theme := DefaultTheme(lipgloss.NewRenderer(w))
		opts.Theme = &theme
	}
	m := New(opts)
	m.width, m.height = width+SidebarWidth+2, printHeight
	m.resize()
	if m.page != nil {
		m.page.SetSize(width, printHeight)
	}

	var out string
	switch p := m.page.(type) {
	case *boardPage:
		out = p.render(false)
	case nil:
		out = renderNotFound(m.theme, m.path, m.notFound)
	default:
		out = p.View()
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}
	return m.notFound
}
