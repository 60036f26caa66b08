// Package source fetches the complete entity collection from a remote
// endpoint that paginates with a "next page" cursor.
//
// Each response has the shape
//
//	{ "count": 82, "next": "https://host/api/people/?page=2", "results": [ ... ] }
//
// Client.Pages exposes the cursor walk as a lazy, finite, non-restartable
// iterator; Client.FetchAll drains it into a single slice in arrival order.
// Requests are strictly sequential: the next page is requested only after the
// previous one has been decoded.
//
// Failures are reported as *FetchError values whose Kind is one of
// ErrNetworkFailure, ErrMalformedResponse or ErrPageLimit, so callers can
// branch with errors.Is. FetchAll never returns a partial collection.
package source
