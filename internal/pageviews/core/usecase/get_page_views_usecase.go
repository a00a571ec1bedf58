package usecase

import (
	"context"
	"errors"
	"strings"

	"pageview-service/internal/pageviews/core/domain"
	"pageview-service/internal/pageviews/core/ports"
)

var (
	ErrInvalidPageViewQuery = errors.New("invalid page view query")
	ErrInvalidProperty      = errors.New("invalid analytics property id")
	ErrInvalidDateRange     = errors.New("invalid date range")
)

// Property identifies the GA4 property and the key file used to read it.
type Property struct {
	ID      string
	KeyFile string
}

type GetPageViewsInput struct {
	Slug      string
	StartDate string
	EndDate   string // "" -> "today"
}

type GetPageViewsUseCase struct {
	reader   ports.PageViewReaderPort
	property Property
}

func NewGetPageViewsUseCase(reader ports.PageViewReaderPort, property Property) *GetPageViewsUseCase {
	return &GetPageViewsUseCase{reader: reader, property: property}
}

// Execute validates the input, builds a ViewQuery and asks the reader for the count.
func (uc *GetPageViewsUseCase) Execute(ctx context.Context, in GetPageViewsInput) (*domain.PageViews, error) {
	if strings.TrimSpace(in.Slug) == "" {
		return nil, ErrInvalidPageViewQuery
	}

	if !isDigits(uc.property.ID) {
		return nil, ErrInvalidProperty
	}

	q := domain.ViewQuery{
		Slug:          in.Slug,
		PropertyID:    uc.property.ID,
		CredentialRef: uc.property.KeyFile,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
	}.WithDefaults()

	if !domain.ValidDate(q.StartDate) || !domain.ValidDate(q.EndDate) {
		return nil, ErrInvalidDateRange
	}
	if !domain.OrderedRange(q.StartDate, q.EndDate) {
		return nil, ErrInvalidDateRange
	}

	views, err := uc.reader.FetchPageViewCount(ctx, q)
	if err != nil {
		return nil, err
	}

	return &domain.PageViews{
		Slug:       q.Slug,
		PropertyID: q.PropertyID,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Views:      views,
	}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
