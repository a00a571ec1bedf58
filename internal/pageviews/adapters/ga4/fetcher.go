package ga4

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pageview-service/internal/pageviews/core/domain"
	"pageview-service/internal/pageviews/core/ports"
	"pageview-service/internal/telemetry"

	"go.uber.org/zap"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/googleapi"
)

const (
	dimensionPagePath = "pagePath"
	metricPageViews   = "screenPageViews"
	matchTypeExact    = "EXACT"
)

type PageViewFetcher struct {
	newService ServiceFactory
	logger     *zap.Logger
}

var _ ports.PageViewReaderPort = (*PageViewFetcher)(nil)

// NewPageViewFetcher returns a fetcher that builds a fresh client per call.
// A nil factory means NewServiceFromKeyFile.
func NewPageViewFetcher(newService ServiceFactory, logger *zap.Logger) *PageViewFetcher {
	if newService == nil {
		newService = NewServiceFromKeyFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageViewFetcher{newService: newService, logger: logger}
}

// FetchPageViewCount issues one runReport for the exact page path in q.
// No rows means 0 views. Any failure is logged and returned as ErrFetchFailed.
func (f *PageViewFetcher) FetchPageViewCount(ctx context.Context, q domain.ViewQuery) (int64, error) {
	q = q.WithDefaults()
	started := time.Now()

	resp, err := f.runReport(ctx, q)
	if err != nil {
		return 0, f.fail(q, started, err)
	}

	if len(resp.Rows) == 0 {
		telemetry.RecordFetch(telemetry.OutcomeEmpty, time.Since(started))
		return 0, nil
	}

	views, err := firstMetricValue(resp.Rows[0])
	if err != nil {
		return 0, f.fail(q, started, err)
	}

	telemetry.RecordFetch(telemetry.OutcomeSuccess, time.Since(started))
	return views, nil
}

func (f *PageViewFetcher) runReport(ctx context.Context, q domain.ViewQuery) (*analyticsdata.RunReportResponse, error) {
	svc, err := f.newService(ctx, q.CredentialRef)
	if err != nil {
		return nil, fmt.Errorf("create analytics client: %w", err)
	}
	if svc == nil {
		return nil, errors.New("create analytics client: nil service")
	}

	resp, err := svc.Properties.RunReport(q.PropertyResource(), buildReportRequest(q)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("run report: %w", err)
	}
	if resp == nil {
		return nil, errors.New("run report: empty response")
	}
	return resp, nil
}

func (f *PageViewFetcher) fail(q domain.ViewQuery, started time.Time, cause error) error {
	telemetry.RecordFetch(telemetry.OutcomeError, time.Since(started))

	fields := []zap.Field{
		zap.String("property_id", q.PropertyID),
		zap.String("slug", q.Slug),
		zap.String("start_date", q.StartDate),
		zap.String("end_date", q.EndDate),
		zap.Error(cause),
	}
	var apiErr *googleapi.Error
	if errors.As(cause, &apiErr) {
		fields = append(fields, zap.Int("status", apiErr.Code))
	}
	f.logger.Error("error fetching data from google analytics", fields...)

	return &FetchError{cause: cause}
}

func buildReportRequest(q domain.ViewQuery) *analyticsdata.RunReportRequest {
	return &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{
			{StartDate: q.StartDate, EndDate: q.EndDate},
		},
		Dimensions: []*analyticsdata.Dimension{
			{Name: dimensionPagePath},
		},
		Metrics: []*analyticsdata.Metric{
			{Name: metricPageViews},
		},
		DimensionFilter: &analyticsdata.FilterExpression{
			Filter: &analyticsdata.Filter{
				FieldName: dimensionPagePath,
				StringFilter: &analyticsdata.StringFilter{
					MatchType: matchTypeExact,
					Value:     q.Slug,
				},
			},
		},
	}
}

func firstMetricValue(row *analyticsdata.Row) (int64, error) {
	if row == nil || len(row.MetricValues) == 0 || row.MetricValues[0] == nil {
		return 0, errors.New("row has no metric values")
	}

	raw := row.MetricValues[0].Value
	views, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse metric value %q: %w", raw, err)
	}
	if views < 0 {
		return 0, fmt.Errorf("negative metric value %d", views)
	}
	return views, nil
}
