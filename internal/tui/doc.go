// Package tui renders the catalogue in the terminal.
//
// BrowseModel is the interactive Bubble Tea program: a search box, a page of
// entity cards, a pager and a detail view, all driven by a catalog.Store.
// The render helpers (RenderCard, RenderDetail, RenderTable) are shared with
// the non-interactive search command.
package tui
