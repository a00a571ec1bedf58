package usecase_test

import (
	"context"
	"errors"
	"testing"

	"pageview-service/internal/pageviews/core/domain"
	"pageview-service/internal/pageviews/core/usecase"
)

// fakePageViewReader stands in for PageViewReaderPort.
type fakePageViewReader struct {
	FetchFn   func(ctx context.Context, q domain.ViewQuery) (int64, error)
	lastQuery domain.ViewQuery
	called    bool
}

func (f *fakePageViewReader) FetchPageViewCount(ctx context.Context, q domain.ViewQuery) (int64, error) {
	f.called = true
	f.lastQuery = q
	if f.FetchFn != nil {
		return f.FetchFn(ctx, q)
	}
	return 0, nil
}

var testProperty = usecase.Property{ID: "123456", KeyFile: "key.json"}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetPageViews_Success(t *testing.T) {
	reader := &fakePageViewReader{
		FetchFn: func(ctx context.Context, q domain.ViewQuery) (int64, error) {
			if q.Slug != "/blog/my-post" {
				t.Fatalf("expected slug=/blog/my-post, got %s", q.Slug)
			}
			if q.PropertyID != "123456" || q.CredentialRef != "key.json" {
				t.Fatalf("unexpected property wiring: %+v", q)
			}
			if q.StartDate != "2023-01-01" || q.EndDate != "2023-03-31" {
				t.Fatalf("unexpected date range %s..%s", q.StartDate, q.EndDate)
			}
			return 17, nil
		},
	}

	uc := usecase.NewGetPageViewsUseCase(reader, testProperty)

	out, err := uc.Execute(context.Background(), usecase.GetPageViewsInput{
		Slug:      "/blog/my-post",
		StartDate: "2023-01-01",
		EndDate:   "2023-03-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Views != 17 {
		t.Fatalf("expected 17 views, got %d", out.Views)
	}
	if !reader.called {
		t.Fatalf("expected FetchPageViewCount to be called")
	}
}

func TestGetPageViews_ZeroViews(t *testing.T) {
	reader := &fakePageViewReader{}
	uc := usecase.NewGetPageViewsUseCase(reader, testProperty)

	out, err := uc.Execute(context.Background(), usecase.GetPageViewsInput{
		Slug:      "/never-visited",
		StartDate: "2023-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Views != 0 {
		t.Fatalf("expected 0 views, got %d", out.Views)
	}
}

// ------------------------------------------------------------
// END DATE DEFAULT
// ------------------------------------------------------------

func TestGetPageViews_EndDateDefaultsToToday(t *testing.T) {
	reader := &fakePageViewReader{}
	uc := usecase.NewGetPageViewsUseCase(reader, testProperty)

	out, err := uc.Execute(context.Background(), usecase.GetPageViewsInput{
		Slug:      "/blog/my-post",
		StartDate: "2023-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reader.lastQuery.EndDate != "today" {
		t.Fatalf("expected end date today, got %s", reader.lastQuery.EndDate)
	}
	if out.EndDate != "today" {
		t.Fatalf("expected result end date today, got %s", out.EndDate)
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestGetPageViews_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		property usecase.Property
		in       usecase.GetPageViewsInput
		wantErr  error
	}{
		{
			name:     "empty_slug",
			property: testProperty,
			in:       usecase.GetPageViewsInput{Slug: "  ", StartDate: "2023-01-01"},
			wantErr:  usecase.ErrInvalidPageViewQuery,
		},
		{
			name:     "missing_property",
			property: usecase.Property{KeyFile: "key.json"},
			in:       usecase.GetPageViewsInput{Slug: "/a", StartDate: "2023-01-01"},
			wantErr:  usecase.ErrInvalidProperty,
		},
		{
			name:     "non_numeric_property",
			property: usecase.Property{ID: "properties/1", KeyFile: "key.json"},
			in:       usecase.GetPageViewsInput{Slug: "/a", StartDate: "2023-01-01"},
			wantErr:  usecase.ErrInvalidProperty,
		},
		{
			name:     "missing_start_date",
			property: testProperty,
			in:       usecase.GetPageViewsInput{Slug: "/a"},
			wantErr:  usecase.ErrInvalidDateRange,
		},
		{
			name:     "bad_end_date",
			property: testProperty,
			in:       usecase.GetPageViewsInput{Slug: "/a", StartDate: "2023-01-01", EndDate: "tomorrow"},
			wantErr:  usecase.ErrInvalidDateRange,
		},
		{
			name:     "reversed_range",
			property: testProperty,
			in:       usecase.GetPageViewsInput{Slug: "/a", StartDate: "2023-05-01", EndDate: "2023-01-01"},
			wantErr:  usecase.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakePageViewReader{}
			uc := usecase.NewGetPageViewsUseCase(reader, tt.property)

			out, err := uc.Execute(context.Background(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if out != nil {
				t.Fatalf("expected nil result on error")
			}
			if reader.called {
				t.Fatalf("reader should not be called on invalid input")
			}
		})
	}
}

// ------------------------------------------------------------
// READER ERROR PROPAGATION
// ------------------------------------------------------------

func TestGetPageViews_ReaderError(t *testing.T) {
	fetchErr := errors.New("analytics down")
	reader := &fakePageViewReader{
		FetchFn: func(ctx context.Context, q domain.ViewQuery) (int64, error) {
			return 0, fetchErr
		},
	}

	uc := usecase.NewGetPageViewsUseCase(reader, testProperty)

	out, err := uc.Execute(context.Background(), usecase.GetPageViewsInput{
		Slug:      "/blog/my-post",
		StartDate: "2023-01-01",
	})
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected reader error, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result on error")
	}
}
