package domain

// DefaultEndDate is used when a query does not name an end date.
const DefaultEndDate = "today"

// ViewQuery describes a single page view lookup. It lives for one call.
type ViewQuery struct {
	Slug          string // exact page path, no wildcards
	PropertyID    string // GA4 property id, without the "properties/" prefix
	CredentialRef string // path to a service-account key file
	StartDate     string
	EndDate       string
}

// WithDefaults returns a copy of q with EndDate set to "today" when empty.
func (q ViewQuery) WithDefaults() ViewQuery {
	if q.EndDate == "" {
		q.EndDate = DefaultEndDate
	}
	return q
}

// PropertyResource is the resource name the Data API expects.
func (q ViewQuery) PropertyResource() string {
	return "properties/" + q.PropertyID
}

type PageViews struct {
	Slug       string
	PropertyID string
	StartDate  string
	EndDate    string
	Views      int64
}
