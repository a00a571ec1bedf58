package ga4

import "pageview-service/internal/pageviews/core/ports"

// ErrFetchFailed is the only error kind the fetcher returns. Match it
// with errors.Is.
var ErrFetchFailed = ports.ErrPageViewFetchFailed

// FetchError carries the underlying cause for logging. The cause is not
// part of Error() and is not unwrapped, so callers cannot branch on it.
type FetchError struct {
	cause error
}

// Error returns the fixed fetch failure message.
func (e *FetchError) Error() string {
	return ErrFetchFailed.Error()
}

// Is matches ports.ErrPageViewFetchFailed and nothing else.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
