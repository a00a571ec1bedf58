package ga4

import (
	"context"

	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"
)

// ServiceFactory builds an authenticated Data API client for one call.
type ServiceFactory func(ctx context.Context, credentialRef string) (*analyticsdata.Service, error)

// NewServiceFromKeyFile authenticates with a service-account key file and
// requests read-only analytics access.
func NewServiceFromKeyFile(ctx context.Context, keyFile string) (*analyticsdata.Service, error) {
	return analyticsdata.NewService(ctx,
		option.WithCredentialsFile(keyFile),
		option.WithScopes(analyticsdata.AnalyticsReadonlyScope),
	)
}
