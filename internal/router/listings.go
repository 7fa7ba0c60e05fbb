package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Abla25/roomradar/internal/apperr"
	"github.com/Abla25/roomradar/internal/storage"
)

const (
	defaultSearchSize = 20
	maxSearchSize     = 100
)

// ListingsRouter exposes the public listings API.
type ListingsRouter struct {
	e        *echo.Echo
	store    storage.ListingStore
	searcher storage.Searcher
	city     string
}

// NewListingsRouter binds the API to a store. searcher may be nil when
// no search backend is configured.
func NewListingsRouter(e *echo.Echo, store storage.ListingStore, searcher storage.Searcher, city string) *ListingsRouter {
	return &ListingsRouter{
		e:        e,
		store:    store,
		searcher: searcher,
		city:     city,
	}
}

func (r *ListingsRouter) Bind() {
	r.e.GET("/api/listings", r.listingsHandler)
	r.e.GET("/api/search", r.searchHandler)
	r.e.POST("/api/report", r.reportHandler)
}

// listingsHandler godoc
//
//	@Summary	List active listings
//	@Tags		listings
//	@Produce	json
//	@Success	200	{array}	domain.Listing
//	@Router		/api/listings [get]
func (r *ListingsRouter) listingsHandler(c echo.Context) error {
	listings, err := r.store.QueryActive(c.Request().Context(), r.city)
	if err != nil {
		return fmt.Errorf("failed to query active listings: %w", err)
	}
	return c.JSON(http.StatusOK, listings)
}

// searchHandler godoc
//
//	@Summary	Full-text search over active listings
//	@Tags		listings
//	@Produce	json
//	@Param		query	query		string	true	"search terms"
//	@Param		size	query		int		false	"max hits"
//	@Success	200		{object}	storage.SearchResult
//	@Router		/api/search [get]
func (r *ListingsRouter) searchHandler(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return apperr.NewValidation("query parameter is required")
	}
	if r.searcher == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not configured")
	}

	size := defaultSearchSize
	if s := c.QueryParam("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err == nil && parsed > 0 {
			size = min(parsed, maxSearchSize)
		}
	}

	result, err := r.searcher.Search(c.Request().Context(), r.city, query, size)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return c.JSON(http.StatusOK, result)
}

type reportRequest struct {
	Link  string `json:"link"`
	Title string `json:"title,omitempty"`
}

type reportResponse struct {
	Link    string `json:"link"`
	Reports int    `json:"reports"`
}

// reportHandler godoc
//
//	@Summary	Report a listing as unavailable or misleading
//	@Tags		listings
//	@Accept		json
//	@Produce	json
//	@Param		report	body		reportRequest	true	"listing link"
//	@Success	200		{object}	reportResponse
//	@Router		/api/report [post]
func (r *ListingsRouter) reportHandler(c echo.Context) error {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid report payload", err)
	}
	if req.Link == "" {
		return apperr.NewValidation("link is required")
	}

	reports, err := r.store.IncrementReports(c.Request().Context(), req.Link)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound("listing not found")
	}
	if err != nil {
		return fmt.Errorf("failed to increment reports: %w", err)
	}

	slog.Info("listing reported", "link", req.Link, "title", req.Title, "reports", reports)
	return c.JSON(http.StatusOK, reportResponse{Link: req.Link, Reports: reports})
}
