// Package pagination slices ordered result sets into fixed-size display pages.
//
// This package contains the page arithmetic shared by the interactive browser
// and the non-interactive search command:
//   - Page / TotalPages: the pure paginator over any ordered slice
//   - Params: CLI flag values (--page, --page-size, --sort) with validation
//   - Meta: response metadata for paginated output (JSON/NDJSON/table footers)
//
// Page numbers are 1-based. A sequence always has at least one page, so an
// empty result renders as "page 1 of 1" with no items instead of failing.
package pagination
