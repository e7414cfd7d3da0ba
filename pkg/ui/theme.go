package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/workboard/wb/pkg/model"
)

// Theme carries the renderer and the semantic colors every view draws with
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor

	// Status colors, one per work item status
	New       lipgloss.AdaptiveColor
	Active    lipgloss.AdaptiveColor
	Stuck     lipgloss.AdaptiveColor
	Done      lipgloss.AdaptiveColor
	Cancelled lipgloss.AdaptiveColor

	// Type colors
	Bug     lipgloss.AdaptiveColor
	Feature lipgloss.AdaptiveColor
	Task    lipgloss.AdaptiveColor
	Epic    lipgloss.AdaptiveColor

	Base lipgloss.Style

	// Plain is set when the output cannot show colors; markdown is then
	// rendered without styling.
	Plain bool
}

// groupPalette cycles blue, purple, teal, orange by group index
var groupPalette = []lipgloss.AdaptiveColor{
	{Light: "#2563EB", Dark: "#60A5FA"},
	{Light: "#7C3AED", Dark: "#BD93F9"},
	{Light: "#0D9488", Dark: "#2DD4BF"},
	{Light: "#EA580C", Dark: "#FFB86C"},
}

// DefaultTheme returns the Dracula-flavored theme. A nil renderer uses
// lipgloss's default renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#6272A4"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#BFBFBF"},
		Border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#EDE9FE", Dark: "#44475A"},
		Danger:    lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF5555"},
		Success:   lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#50FA7B"},
		Warning:   lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FFB86C"},

		New:       lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#BFBFBF"},
		Active:    lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#8BE9FD"},
		Stuck:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF5555"},
		Done:      lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#50FA7B"},
		Cancelled: lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6272A4"},

		Bug:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF5555"},
		Feature: lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FFB86C"},
		Task:    lipgloss.AdaptiveColor{Light: "#CA8A04", Dark: "#F1FA8C"},
		Epic:    lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#BD93F9"},
	}
	t.Plain = r.ColorProfile() == termenv.Ascii
	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F8F8F2"})
	return t
}

// StatusColor maps a status to its color
func (t Theme) StatusColor(s model.Status) lipgloss.AdaptiveColor {
	switch s {
	case model.StatusActive:
		return t.Active
	case model.StatusStuck:
		return t.Stuck
	case model.StatusDone:
		return t.Done
	case model.StatusCancelled:
		return t.Cancelled
	}
	return t.New
}

// TypeColor maps a work item type to its color
func (t Theme) TypeColor(tp model.WorkItemType) lipgloss.AdaptiveColor {
	switch tp {
	case model.TypeBug:
		return t.Bug
	case model.TypeFeature:
		return t.Feature
	case model.TypeEpic:
		return t.Epic
	}
	return t.Task
}

// GroupColor returns the accent of the group at index
func (t Theme) GroupColor(index int) lipgloss.AdaptiveColor {
	if index < 0 {
		index = -index
	}
	return groupPalette[index%len(groupPalette)]
}

// Style is shorthand for t.Renderer.NewStyle()
func (t Theme) Style() lipgloss.Style {
	return t.Renderer.NewStyle()
}
