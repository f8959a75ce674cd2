package api

import (
	"github.com/labstack/echo/v4"

	"StonkWatch/internal/domain/models"
	"StonkWatch/internal/usecase"
	httppkg "StonkWatch/pkg/http"
)

// DashboardHandler exposes the cached data feeds and derived views.
type DashboardHandler struct {
	dashboard *usecase.Dashboard
}

// NewDashboardHandler creates the dashboard handler.
func NewDashboardHandler(dashboard *usecase.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// RegisterRoutes registers the dashboard routes.
func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/lobbying", h.Lobbying)
	api.GET("/lobbying/:ticker", h.LobbyingHistory)
	api.GET("/congress", h.Congress)
	api.GET("/congress/:ticker", h.CongressHistory)
	api.GET("/contracts", h.Contracts)
	api.GET("/contracts/:ticker", h.ContractHistory)
	api.GET("/news", h.News)
	api.GET("/homepage", h.Homepage)
	api.GET("/sectors", h.Sectors)
	api.GET("/sectors/summary", h.SectorSummary)
	api.GET("/market-overview", h.MarketOverview)
	api.GET("/intraday", h.Intraday)
}

// Lobbying returns the lobbying disclosure feed.
func (h *DashboardHandler) Lobbying(c echo.Context) error {
	var req models.LiveRequest
	if errs := httppkg.ReadAndValidateRequest(c, &req); errs != nil {
		return httppkg.BadRequestResponse(c, errs)
	}

	records, err := h.dashboard.Lobbying(c.Request().Context(), req.Page, req.PageSize)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("lobbying data unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, records)
}

// LobbyingHistory returns one ticker's lobbying history.
func (h *DashboardHandler) LobbyingHistory(c echo.Context) error {
	var req models.HistoryRequest
	if errs := httppkg.ReadAndValidateRequest(c, &req); errs != nil {
		return httppkg.BadRequestResponse(c, errs)
	}

	records, err := h.dashboard.LobbyingHistory(c.Request().Context(), c.Param("ticker"), req.Page, req.PageSize)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("lobbying history unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, records)
}

// Congress returns the congressional trading feed.
func (h *DashboardHandler) Congress(c echo.Context) error {
	var req models.LiveRequest
	if errs := httppkg.ReadAndValidateRequest(c, &req); errs != nil {
		return httppkg.BadRequestResponse(c, errs)
	}

	records, err := h.dashboard.CongressTrades(c.Request().Context(), req.Page, req.PageSize)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("congress trading data unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, records)
}

// CongressHistory returns one ticker's trade history.
func (h *DashboardHandler) CongressHistory(c echo.Context) error {
	var req models.HistoryRequest
	if errs := httppkg.ReadAndValidateRequest(c, &req); errs != nil {
		return httppkg.BadRequestResponse(c, errs)
	}

	records, err := h.dashboard.CongressTradeHistory(c.Request().Context(), c.Param("ticker"), req.Page, req.PageSize)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("congress history unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, records)
}

// Contracts returns the government contract feed.
func (h *DashboardHandler) Contracts(c echo.Context) error {
	var req models.LiveRequest
	if errs := httppkg.ReadAndValidateRequest(c, &req); errs != nil {
		return httppkg.BadRequestResponse(c, errs)
	}

	records, err := h.dashboard.Contracts(c.Request().Context(), req.Page, req.PageSize)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("contract data unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, records)
}

// ContractHistory returns one ticker's contract history.
func (h *DashboardHandler) ContractHistory(c echo.Context) error {
	var req models.HistoryRequest
	if errs := httppkg.ReadAndValidateRequest(c, &req); errs != nil {
		return httppkg.BadRequestResponse(c, errs)
	}

	records, err := h.dashboard.ContractHistory(c.Request().Context(), c.Param("ticker"), req.Page, req.PageSize)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("contract history unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, records)
}

// News returns the merged business and tech headlines.
func (h *DashboardHandler) News(c echo.Context) error {
	articles, err := h.dashboard.News(c.Request().Context())
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("news unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, articles)
}

// Homepage returns the derived homepage summary.
func (h *DashboardHandler) Homepage(c echo.Context) error {
	summary, err := h.dashboard.Homepage(c.Request().Context())
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("homepage data unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, summary)
}

// Sectors returns the sector ETF snapshot.
func (h *DashboardHandler) Sectors(c echo.Context) error {
	snapshot, err := h.dashboard.Sectors(c.Request().Context())
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("sector data unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, snapshot)
}

// SectorSummary returns sector breadth statistics.
func (h *DashboardHandler) SectorSummary(c echo.Context) error {
	summary, err := h.dashboard.SectorSummary(c.Request().Context())
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("sector summary unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, summary)
}

// MarketOverview returns the index and commodity strip.
func (h *DashboardHandler) MarketOverview(c echo.Context) error {
	overview, err := h.dashboard.MarketOverview(c.Request().Context())
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("market overview unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, overview)
}

// Intraday returns one symbol's intraday series.
func (h *DashboardHandler) Intraday(c echo.Context) error {
	var req models.IntradayRequest
	if errs := httppkg.ReadAndValidateRequest(c, &req); errs != nil {
		return httppkg.BadRequestResponse(c, errs)
	}

	series, err := h.dashboard.Intraday(c.Request().Context(), req.Symbol)
	if err != nil {
		return httppkg.AppErrorResponse(c, httppkg.UpstreamError("intraday data unavailable").WithError(err))
	}
	return httppkg.SuccessResponse(c, series)
}
