package api

import "github.com/labstack/echo/v4"

// Router bundles every API handler behind one route registration.
type Router struct {
	dashboard *DashboardHandler
	watchlist *WatchlistHandler
}

// NewRouter creates the API router.
func NewRouter(dashboard *DashboardHandler, watchlist *WatchlistHandler) *Router {
	return &Router{dashboard: dashboard, watchlist: watchlist}
}

// RegisterRoutes registers all API routes.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	r.dashboard.RegisterRoutes(e)
	r.watchlist.RegisterRoutes(e)
}
