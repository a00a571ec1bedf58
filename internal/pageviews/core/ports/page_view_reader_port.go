package ports

import (
	"context"
	"errors"

	"pageview-service/internal/pageviews/core/domain"
)

// ErrPageViewFetchFailed is the single failure kind a reader reports.
// Readers keep the underlying cause to themselves.
var ErrPageViewFetchFailed = errors.New("error fetching data from google analytics")

type PageViewReaderPort interface {
	// FetchPageViewCount returns views >= 0, or an error and no count.
	// Zero rows from the analytics backend is a count of 0, not an error.
	FetchPageViewCount(ctx context.Context, q domain.ViewQuery) (int64, error)
}
