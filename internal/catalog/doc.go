// Package catalog holds the in-memory entity catalogue and its query pipeline.
//
// The pipeline is fetch → sort → filter → rank → paginate:
//   - Comparator.SortByName establishes the canonical, locale-aware baseline order once
//   - Comparator.Rank answers a free-text query against name, gender, height and
//     eye colour, placing name-prefix matches before other matches
//   - Derive paginates the ranked view for display
//
// Store owns the baseline collection, the current query and the current page,
// and recomputes the derived view whenever one of them changes. A Store is
// owned by a single goroutine (the TUI update loop or a CLI command) and is
// not safe for concurrent use.
package catalog
