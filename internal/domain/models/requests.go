package models

// HistoryRequest filters a per-ticker historical listing.
type HistoryRequest struct {
	Page     int `query:"page" default:"1" validate:"min=1"`
	PageSize int `query:"page_size" default:"10" validate:"min=1,max=100"`
}

// LiveRequest filters a live listing.
type LiveRequest struct {
	Page           int    `query:"page" default:"1" validate:"min=1"`
	PageSize       int    `query:"page_size" default:"50" validate:"min=1,max=100"`
	Representative string `query:"representative"`
}

// WatchlistAddRequest adds a ticker to the watchlist.
type WatchlistAddRequest struct {
	Ticker string `json:"ticker" validate:"required,min=1,max=12"`
}

// QuoteRefreshRequest asks for fresh quotes for a ticker batch.
type QuoteRefreshRequest struct {
	Tickers []string `json:"tickers" validate:"required,min=1,max=50,dive,min=1,max=12"`
}

// IntradayRequest selects the intraday chart symbol.
type IntradayRequest struct {
	Symbol string `query:"symbol" default:"SPY" validate:"min=1,max=12"`
}
