package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/holocron/internal/source"
)

// ViewState is the screen the browse model shows.
type ViewState int

const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateDetail
	ViewStateError
	ViewStateQuitting
)

// String returns the state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return fmt.Sprintf("ViewState(%d)", int(s))
	}
}

// LoadingState is the spinner and fetch progress shown while loading.
type LoadingState struct {
	spinner  spinner.Model
	progress source.ProgressSnapshot
}

// NewLoadingState creates a loading state with a fresh spinner.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = TitleStyle.UnsetMarginBottom()
	return &LoadingState{spinner: s}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// SetProgress records the latest fetch progress.
func (l *LoadingState) SetProgress(p source.ProgressSnapshot) {
	l.progress = p
}

// Progress returns the latest fetch progress.
func (l *LoadingState) Progress() source.ProgressSnapshot {
	return l.progress
}

// RenderLoading renders the spinner line with page and item counts.
func RenderLoading(l *LoadingState, title string) string {
	p := l.progress
	line := fmt.Sprintf("%s Loading %s", l.spinner.View(), title)
	switch {
	case p.FetchedPages == 0:
		return line + "..."
	case p.TotalKnown:
		return fmt.Sprintf("%s: %d of %d fetched (%.0f%%, %d pages)",
			line, p.FetchedItems, p.TotalItems, p.Percent, p.FetchedPages)
	default:
		return fmt.Sprintf("%s: %d fetched (%d pages)", line, p.FetchedItems, p.FetchedPages)
	}
}
