package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/holocron/internal/catalog"
	"github.com/rshade/holocron/internal/source"
	listview "github.com/rshade/holocron/internal/tui/list"
)

const (
	searchCharLimit = 64
	maxSearchWidth  = 60

	// chromeHeight is the rows used by title, search, pager and help.
	chromeHeight = 10
	// cardHeight is the rows one card occupies.
	cardHeight = 2

	// dotsPagerLimit switches the pager from dots to "n/m" above this many pages.
	dotsPagerLimit = 20
)

// DefaultTitle heads the browse view when none is configured.
const DefaultTitle = "Star Wars characters"

type entitiesLoadedMsg struct {
	entities []catalog.Entity
	err      error
}

type progressMsg source.ProgressSnapshot

// BrowseOption configures a BrowseModel.
type BrowseOption func(*BrowseModel)

// WithTitle sets the heading.
func WithTitle(title string) BrowseOption {
	return func(m *BrowseModel) {
		if title != "" {
			m.title = title
		}
	}
}

// WithProgress subscribes the loading screen to fetch progress snapshots.
func WithProgress(ch <-chan source.ProgressSnapshot) BrowseOption {
	return func(m *BrowseModel) {
		m.progress = ch
	}
}

// WithInitialQuery pre-fills the search box.
func WithInitialQuery(query string) BrowseOption {
	return func(m *BrowseModel) {
		m.search.SetValue(query)
		m.store.SetQuery(query)
	}
}

// BrowseModel is the interactive catalogue browser.
type BrowseModel struct {
	ctx    context.Context
	loader *catalog.Loader
	store  *catalog.Store
	title  string

	state   ViewState
	loading *LoadingState

	progress        <-chan source.ProgressSnapshot
	waitingProgress bool

	search        textinput.Model
	searchFocused bool
	cards         *listview.Model[catalog.Entity]
	pager         paginator.Model
	help          help.Model
	keys          KeyMap

	display catalog.Display

	width  int
	height int
}

// NewBrowseModel creates a browser that loads the collection through loader
// into store. The model starts in the loading state with the search box focused.
func NewBrowseModel(
	ctx context.Context,
	loader *catalog.Loader,
	store *catalog.Store,
	opts ...BrowseOption,
) *BrowseModel {
	m := &BrowseModel{
		ctx:    ctx,
		loader: loader,
		store:  store,
		title:  DefaultTitle,
		search: newSearchInput(),
		cards:  listview.New(RenderCard),
		pager:  newPager(store.PageSize()),
		help:   help.New(),
		keys:   DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.searchFocused = true
	m.search.Focus()
	m.resize(defaultWidth, defaultHeight)
	m.beginLoad()
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "name, gender, height or eye colour"
	ti.CharLimit = searchCharLimit
	ti.Width = maxSearchWidth
	return ti
}

func newPager(perPage int) paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = perPage
	p.ActiveDot = TitleStyle.UnsetMarginBottom().Render("•")
	p.InactiveDot = MutedStyle.Render("•")
	return p
}

// State returns the current screen.
func (m *BrowseModel) State() ViewState {
	return m.state
}

// Display returns the last rendered catalogue state.
func (m *BrowseModel) Display() catalog.Display {
	return m.display
}

// SearchFocused reports whether key presses edit the query.
func (m *BrowseModel) SearchFocused() bool {
	return m.searchFocused
}

// Selected returns the entity under the cursor.
func (m *BrowseModel) Selected() (catalog.Entity, bool) {
	return m.cards.Selected()
}

// Init starts the spinner, the fetch and the progress subscription.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCmds())
}

func (m *BrowseModel) beginLoad() {
	m.drainProgress()
	m.store.BeginLoad()
	m.state = ViewStateLoading
	m.loading = NewLoadingState()
	m.refresh(true)
}

// drainProgress discards snapshots buffered by an earlier attempt.
func (m *BrowseModel) drainProgress() {
	if m.progress == nil {
		return
	}
	for {
		select {
		case _, ok := <-m.progress:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (m *BrowseModel) loadCmds() tea.Cmd {
	cmds := []tea.Cmd{m.loading.Init(), m.fetchCmd()}
	if wait := m.waitForProgress(); wait != nil {
		cmds = append(cmds, wait)
	}
	return tea.Batch(cmds...)
}

func (m *BrowseModel) fetchCmd() tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		entities, err := loader.Load(ctx)
		return entitiesLoadedMsg{entities: entities, err: err}
	}
}

// waitForProgress returns a command that delivers the next snapshot, or nil
// when there is no feed or a wait is already outstanding.
func (m *BrowseModel) waitForProgress() tea.Cmd {
	if m.progress == nil || m.waitingProgress {
		return nil
	}
	m.waitingProgress = true
	ch := m.progress
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

// Update handles messages and updates the model state.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case entitiesLoadedMsg:
		return m.handleLoaded(msg)
	case progressMsg:
		m.waitingProgress = false
		if m.state != ViewStateLoading {
			return m, nil
		}
		m.loading.SetProgress(source.ProgressSnapshot(msg))
		return m, m.waitForProgress()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQ) {
			return m.quit()
		}
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateError:
		return m.handleErrorUpdate(msg)
	default:
		return m, nil
	}
}

func (m *BrowseModel) handleLoaded(msg entitiesLoadedMsg) (tea.Model, tea.Cmd) {
	logger := zerolog.Ctx(m.ctx)

	m.store.CompleteLoad(msg.entities, msg.err)
	if msg.err != nil {
		logger.Error().Ctx(m.ctx).Err(msg.err).Msg("browse: load failed")
		m.state = ViewStateError
	} else {
		logger.Debug().Ctx(m.ctx).Int("entities", len(msg.entities)).Msg("browse: load complete")
		m.state = ViewStateList
	}
	m.refresh(true)
	return m, nil
}

// handleLoadingUpdate lets the query be typed while the fetch runs.
func (m *BrowseModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, m.updateSearch(msg)
	}
	cmds := []tea.Cmd{m.loading.Update(msg)}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, tea.Batch(append(cmds, cmd)...)
}

func (m *BrowseModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	if m.searchFocused {
		return m.handleSearchKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Search), key.Matches(keyMsg, m.keys.Focus):
		m.focusSearch()
		return m, textinput.Blink
	case key.Matches(keyMsg, m.keys.Up):
		m.cards.Up()
	case key.Matches(keyMsg, m.keys.Down):
		m.cards.Down()
	case key.Matches(keyMsg, m.keys.PrevPage):
		m.prevPage()
	case key.Matches(keyMsg, m.keys.NextPage):
		m.nextPage()
	case key.Matches(keyMsg, m.keys.Open):
		if _, ok := m.cards.Selected(); ok {
			m.state = ViewStateDetail
		}
	case key.Matches(keyMsg, m.keys.Back):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyQuery()
		}
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleSearchKey routes keys while the search box has focus. Arrow keys and
// page keys still drive the list so results can be browsed while typing.
func (m *BrowseModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyQuery()
		} else {
			m.blurSearch()
		}
		return m, nil
	case tea.KeyEnter, tea.KeyTab:
		m.blurSearch()
		return m, nil
	case tea.KeyUp:
		m.cards.Up()
		return m, nil
	case tea.KeyDown:
		m.cards.Down()
		return m, nil
	case tea.KeyPgUp:
		m.prevPage()
		return m, nil
	case tea.KeyPgDown:
		m.nextPage()
		return m, nil
	}
	return m, m.updateSearch(msg)
}

func (m *BrowseModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m.quit()
		case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.Open):
			m.state = ViewStateList
		}
	}
	return m, nil
}

func (m *BrowseModel) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.Back):
			return m.quit()
		case key.Matches(keyMsg, m.keys.Retry):
			zerolog.Ctx(m.ctx).Info().Ctx(m.ctx).Msg("browse: retrying load")
			m.beginLoad()
			return m, m.loadCmds()
		}
	}
	return m, nil
}

func (m *BrowseModel) quit() (tea.Model, tea.Cmd) {
	m.state = ViewStateQuitting
	return m, tea.Quit
}

func (m *BrowseModel) updateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyQuery()
	return cmd
}

func (m *BrowseModel) applyQuery() {
	changed := m.store.SetQuery(m.search.Value())
	m.refresh(changed)
}

func (m *BrowseModel) focusSearch() {
	m.searchFocused = true
	m.search.Focus()
}

func (m *BrowseModel) blurSearch() {
	m.searchFocused = false
	m.search.Blur()
}

func (m *BrowseModel) nextPage() {
	if m.store.NextPage() {
		m.refresh(true)
	}
}

func (m *BrowseModel) prevPage() {
	if m.store.PrevPage() {
		m.refresh(true)
	}
}

// refresh re-derives the display from the store. resetCursor moves the card
// cursor to the top; otherwise it stays where it was, clamped.
func (m *BrowseModel) refresh(resetCursor bool) {
	cursor := m.cards.Cursor()
	m.display = m.store.Display()
	m.cards.SetItems(m.display.Items)
	if !resetCursor {
		m.cards.SetCursor(cursor)
	}

	m.pager.TotalPages = m.display.TotalPages
	m.pager.Page = m.display.Page - 1
	if m.display.TotalPages > dotsPagerLimit {
		m.pager.Type = paginator.Arabic
	} else {
		m.pager.Type = paginator.Dots
	}
}

func (m *BrowseModel) resize(width, height int) {
	m.width = max(width, minWidth)
	m.height = max(height, minHeight)
	m.search.Width = min(maxSearchWidth, m.width-len(m.search.Prompt)-2)
	m.help.Width = m.width
	m.cards.SetSize(m.width-2, max(1, (m.height-chromeHeight)/cardHeight))
}

// View renders the current view.
func (m *BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	}

	sections := []string{TitleStyle.Render(m.title), m.search.View(), ""}

	switch m.state {
	case ViewStateLoading:
		sections = append(sections, RenderLoading(m.loading, m.title))
	case ViewStateError:
		sections = append(sections,
			ErrorStyle.Render("Could not load "+m.title),
			m.display.Err.Error(),
			"",
			MutedStyle.Render("[r] Retry  [q] Quit"),
		)
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	default:
		sections = append(sections, m.renderResults())
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *BrowseModel) renderResults() string {
	d := m.display
	switch {
	case d.BaselineSize == 0:
		return MutedStyle.Render("The catalogue is empty.")
	case d.NoMatches():
		return RenderNoMatches(d)
	}

	var sb strings.Builder
	sb.WriteString(m.cards.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.pager.View())
	sb.WriteString("  ")
	sb.WriteString(MutedStyle.Render(RenderStatusLine(d)))
	return sb.String()
}

func (m *BrowseModel) renderDetailView() string {
	e, ok := m.cards.Selected()
	if !ok {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(m.title),
		RenderDetail(e, m.width),
		"",
		MutedStyle.Render("[esc] Back  [q] Quit"),
	)
}
