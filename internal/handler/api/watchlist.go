package api

import (
	"github.com/labstack/echo/v4"

	"StonkWatch/internal/domain/models"
	"StonkWatch/internal/usecase"
	httppkg "StonkWatch/pkg/http"
)

// WatchlistHandler exposes the tracked ticker set and quote refreshes.
type WatchlistHandler struct {
	watchlist *usecase.WatchlistService
}

// NewWatchlistHandler creates the watchlist handler.
func NewWatchlistHandler(watchlist *usecase.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

// RegisterRoutes registers the watchlist routes.
func (h *WatchlistHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/watchlist", h.List)
	api.POST("/watchlist", h.Add)
	api.DELETE("/watchlist/:ticker", h.Remove)
	api.POST("/quotes", h.Refresh)
}

// List returns the watchlist with the freshest quotes available.
func (h *WatchlistHandler) List(c echo.Context) error {
	state, err := h.watchlist.List(c.Request().Context())
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("quote data unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, state)
}

// Add tracks a new ticker.
func (h *WatchlistHandler) Add(c echo.Context) error {
	var req models.WatchlistAddRequest
	if errs := httppkg.ReadAndValidateRequest(c, &req); errs != nil {
		return httppkg.BadRequestResponse(c, errs)
	}

	state, err := h.watchlist.Add(c.Request().Context(), req.Ticker)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.InternalError("could not persist watchlist").WithError(err))
	}
	return httppkg.SuccessResponse(c, state)
}

// Remove stops tracking a ticker.
func (h *WatchlistHandler) Remove(c echo.Context) error {
	ticker := c.Param("ticker")
	if ticker == "" {
		return httppkg.AppErrorResponse(c, httppkg.BadRequestError("ticker is required"))
	}

	state, err := h.watchlist.Remove(c.Request().Context(), ticker)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.InternalError("could not persist watchlist").WithError(err))
	}
	return httppkg.SuccessResponse(c, state)
}

// Refresh force-fetches quotes for a ticker batch.
func (h *WatchlistHandler) Refresh(c echo.Context) error {
	var req models.QuoteRefreshRequest
	if errs := httppkg.ReadAndValidateRequest(c, &req); errs != nil {
		return httppkg.BadRequestResponse(c, errs)
	}

	state, err := h.watchlist.Refresh(c.Request().Context(), req.Tickers)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("quote refresh failed").WithError(err))
	}
	return httppkg.SuccessResponse(c, state)
}
