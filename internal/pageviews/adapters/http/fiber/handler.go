package fiber

import (
	"context"
	"errors"
	"net/http"

	"pageview-service/internal/pageviews/core/domain"
	"pageview-service/internal/pageviews/core/ports"
	"pageview-service/internal/pageviews/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetPageViewsUseCase interface {
	Execute(ctx context.Context, in usecase.GetPageViewsInput) (*domain.PageViews, error)
}

type PageViewsHandler struct {
	uc               GetPageViewsUseCase
	defaultStartDate string
}

// NewPageViewsHandler wires the usecase. defaultStartDate is used when a
// request has no start_date.
func NewPageViewsHandler(uc GetPageViewsUseCase, defaultStartDate string) *PageViewsHandler {
	return &PageViewsHandler{uc: uc, defaultStartDate: defaultStartDate}
}

// GetPageViews godoc
// @Summary Page views for a slug
// @Description Returns the GA4 screenPageViews count for an exact page path
// @Tags PageViews
// @Produce json
// @Param slug query string true "Exact page path, e.g. /blog/my-post"
// @Param start_date query string false "YYYY-MM-DD, today, yesterday or NdaysAgo"
// @Param end_date query string false "Same grammar as start_date, defaults to today"
// @Success 200 {object} PageViewsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /page-views [get]
func (h *PageViewsHandler) GetPageViews(c *fiber.Ctx) error {
	slug := c.Query("slug", "")
	if slug == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "slug is required",
		})
	}

	in := usecase.GetPageViewsInput{
		Slug:      slug,
		StartDate: c.Query("start_date", h.defaultStartDate),
		EndDate:   c.Query("end_date", ""),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPageViewQuery),
			errors.Is(err, usecase.ErrInvalidProperty),
			errors.Is(err, usecase.ErrInvalidDateRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		case errors.Is(err, ports.ErrPageViewFetchFailed):
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error: "analytics_fetch_failed",
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(PageViewsResponse{
		Slug:       res.Slug,
		PropertyID: res.PropertyID,
		StartDate:  res.StartDate,
		EndDate:    res.EndDate,
		Views:      res.Views,
	})
}
