package catalog

import (
	"github.com/rshade/holocron/internal/pagination"
)

// Status is the load state of a Store.
type Status int

const (
	// StatusIdle means no load has been started.
	StatusIdle Status = iota
	// StatusLoading means the collection is being fetched.
	StatusLoading
	// StatusReady means the baseline collection is available (possibly empty).
	StatusReady
	// StatusFailed means the fetch failed; the error is kept on the Store.
	StatusFailed
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultSuggestionLimit is the number of "did you mean" names offered for an empty result.
const DefaultSuggestionLimit = 3

// Display is everything the presentation layer needs to render one screen.
type Display struct {
	Status Status
	Err    error

	// Query is the query as typed; Normalized is its folded form.
	Query      string
	Normalized string

	// Items holds the entities on the current page.
	Items []Entity

	Page         int
	PageSize     int
	TotalPages   int
	TotalMatches int
	ExactMatches int
	BaselineSize int

	// Suggestions holds names close to a query that matched nothing.
	Suggestions []string
}

// Loading reports whether the loading indicator should be shown.
func (d Display) Loading() bool {
	return d.Status == StatusLoading
}

// Failed reports whether the collection could not be loaded.
func (d Display) Failed() bool {
	return d.Status == StatusFailed
}

// NoMatches reports a loaded collection for which the query matched nothing.
// It is never true for a failed load.
func (d Display) NoMatches() bool {
	return d.Status == StatusReady && d.TotalMatches == 0
}

// Meta returns pagination metadata for the displayed page.
func (d Display) Meta() pagination.Meta {
	return pagination.NewMeta(d.Page, d.PageSize, d.TotalMatches)
}

// Derive computes the display for a baseline, query and page without any
// state: paginate(rank(baseline, query), page).
func Derive(c *Comparator, baseline []Entity, query string, page, pageSize int) Display {
	return render(c.Rank(baseline, query), query, len(baseline), page, pageSize)
}

func render(r Ranking, rawQuery string, baselineSize, page, pageSize int) Display {
	return Display{
		Status:       StatusReady,
		Query:        rawQuery,
		Normalized:   r.Query,
		Items:        pagination.Page(r.Items, page, pageSize),
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   pagination.TotalPages(len(r.Items), pageSize),
		TotalMatches: len(r.Items),
		ExactMatches: r.Exact,
		BaselineSize: baselineSize,
	}
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithComparator sets the collation used for sorting and ranking.
func WithComparator(c *Comparator) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.comparator = c
		}
	}
}

// WithPageSize overrides the display page size.
func WithPageSize(size int) StoreOption {
	return func(s *Store) {
		if size >= pagination.MinPageSize {
			s.pageSize = size
		}
	}
}

// WithSuggestionLimit sets how many suggestions are offered; 0 disables them.
func WithSuggestionLimit(limit int) StoreOption {
	return func(s *Store) {
		if limit >= 0 {
			s.suggestLimit = limit
		}
	}
}

// Store holds the catalogue state: the baseline collection, the current
// query and the current page. The ranked view is derived from them and
// cached until one of them changes.
type Store struct {
	comparator   *Comparator
	pageSize     int
	suggestLimit int

	status   Status
	err      error
	baseline []Entity

	rawQuery string
	query    string
	page     int

	ranking Ranking
}

// NewStore creates an idle Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		comparator:   DefaultComparator(),
		pageSize:     pagination.DefaultPageSize,
		suggestLimit: DefaultSuggestionLimit,
		page:         pagination.DefaultPage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Comparator returns the collation in use.
func (s *Store) Comparator() *Comparator {
	return s.comparator
}

// Status returns the load state.
func (s *Store) Status() Status {
	return s.status
}

// Err returns the load error when Status is StatusFailed.
func (s *Store) Err() error {
	return s.err
}

// Baseline returns the sorted baseline collection. Callers must not modify it.
func (s *Store) Baseline() []Entity {
	return s.baseline
}

// Query returns the query as last set.
func (s *Store) Query() string {
	return s.rawQuery
}

// Page returns the current 1-based page number.
func (s *Store) Page() int {
	return s.page
}

// PageSize returns the display page size.
func (s *Store) PageSize() int {
	return s.pageSize
}

// Ranking returns the ranked view for the current query.
func (s *Store) Ranking() Ranking {
	return s.ranking
}

// TotalPages returns the number of pages of the ranked view.
func (s *Store) TotalPages() int {
	return pagination.TotalPages(len(s.ranking.Items), s.pageSize)
}

// BeginLoad marks the store as loading and clears any previous failure.
func (s *Store) BeginLoad() {
	s.status = StatusLoading
	s.err = nil
}

// CompleteLoad installs the fetched collection as the baseline, sorted once
// by name. A non-nil err moves the store to StatusFailed and drops any
// entities passed alongside it, so partial fetches are never displayed.
func (s *Store) CompleteLoad(entities []Entity, err error) {
	if err != nil {
		s.status = StatusFailed
		s.err = err
		s.baseline = nil
		s.ranking = Ranking{Query: s.query}
		s.page = pagination.DefaultPage
		return
	}

	s.status = StatusReady
	s.err = nil
	s.baseline = s.comparator.SortByName(entities)
	s.ranking = s.comparator.Rank(s.baseline, s.rawQuery)
	s.page = pagination.DefaultPage
}

// SetQuery updates the query. When the normalized query changes, the ranked
// view is recomputed and the page resets to 1. It reports whether the
// normalized query changed.
func (s *Store) SetQuery(query string) bool {
	s.rawQuery = query
	normalized := Normalize(query)
	if normalized == s.query {
		return false
	}

	s.query = normalized
	s.page = pagination.DefaultPage
	if s.status == StatusReady {
		s.ranking = s.comparator.Rank(s.baseline, query)
	} else {
		s.ranking = Ranking{Query: normalized}
	}
	return true
}

// SetPage moves to page n, clamped to the available pages.
func (s *Store) SetPage(n int) {
	s.page = pagination.ClampPage(n, len(s.ranking.Items), s.pageSize)
}

// NextPage advances one page. It reports false on the last page.
func (s *Store) NextPage() bool {
	if s.page >= s.TotalPages() {
		return false
	}
	s.page++
	return true
}

// PrevPage goes back one page. It reports false on the first page.
func (s *Store) PrevPage() bool {
	if s.page <= pagination.MinPage {
		return false
	}
	s.page--
	return true
}

// Display renders the current state.
func (s *Store) Display() Display {
	if s.status != StatusReady {
		return Display{
			Status:     s.status,
			Err:        s.err,
			Query:      s.rawQuery,
			Normalized: s.query,
			Items:      []Entity{},
			Page:       pagination.DefaultPage,
			PageSize:   s.pageSize,
			TotalPages: 1,
		}
	}

	d := render(s.ranking, s.rawQuery, len(s.baseline), s.page, s.pageSize)
	if d.TotalMatches == 0 && s.query != "" && s.suggestLimit > 0 {
		d.Suggestions = Suggest(s.baseline, s.rawQuery, s.suggestLimit)
	}
	return d
}
