package source

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrNetworkFailure covers transport errors, timeouts and non-2xx responses.
	ErrNetworkFailure = errors.New("network failure")

	// ErrMalformedResponse covers undecodable bodies, a missing results array
	// and unusable next-page cursors.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrPageLimit is returned when the cursor chain is longer than MaxPages.
	ErrPageLimit = errors.New("page limit exceeded")

	// ErrInvalidBaseURL is returned by NewClient for an unusable start URL.
	ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")
)

// FetchError describes a failed page request.
type FetchError struct {
	// URL is the page URL that failed.
	URL string

	// Page is the 1-based position of the page in the cursor chain.
	Page int

	// Kind is one of ErrNetworkFailure, ErrMalformedResponse or ErrPageLimit.
	Kind error

	// Err is the underlying cause, if any.
	Err error
}

// Error implements error.
func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("page %d (%s): %v", e.Page, e.URL, e.Kind)
	}
	return fmt.Sprintf("page %d (%s): %v: %v", e.Page, e.URL, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func networkError(url string, page int, err error) *FetchError {
	return &FetchError{URL: url, Page: page, Kind: ErrNetworkFailure, Err: err}
}

func malformedError(url string, page int, err error) *FetchError {
	return &FetchError{URL: url, Page: page, Kind: ErrMalformedResponse, Err: err}
}
