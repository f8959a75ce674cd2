package models

import "time"

// Sentiment is the congressional buy/sell index on a 0-10 scale.
// 0 means all selling, 10 all buying, 5 neutral.
type Sentiment struct {
	Index     int `json:"index"`
	BuyCount  int `json:"buyCount"`
	SellCount int `json:"sellCount"`
	Total     int `json:"total"`
}

// TickerFrequency counts trades per ticker inside a lookback window.
type TickerFrequency struct {
	Ticker string        `json:"ticker"`
	Count  int           `json:"count"`
	Trades []TradeRecord `json:"trades"`
}

// MultiSignalTicker is a ticker active across several data sources.
type MultiSignalTicker struct {
	Ticker        string `json:"ticker"`
	CongressCount int    `json:"congressCount"`
	LobbyingCount int    `json:"lobbyingCount"`
	ContractCount int    `json:"contractCount"`
	TotalCount    int    `json:"totalCount"`
}

// HomepageSummary bundles the derived views served on the dashboard homepage.
type HomepageSummary struct {
	LastUpdated   time.Time           `json:"lastUpdated"`
	Sentiment     Sentiment           `json:"sentiment"`
	NotableTrades []TradeRecord       `json:"notableTrades"`
	Frequent      []TickerFrequency   `json:"frequentTickers"`
	MultiSignals  []MultiSignalTicker `json:"multiSignals"`
}

// SectorQuote is one sector ETF's daily performance. Nil-able fields stay
// populated-or-zero; Err marks symbols the provider failed on.
type SectorQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percentChange"`
	PreviousClose float64 `json:"previousClose"`
	IsPositive    bool    `json:"isPositive"`
	Err           bool    `json:"error,omitempty"`
}

// SectorSnapshot is the cached sector payload.
type SectorSnapshot struct {
	LastUpdated time.Time     `json:"lastUpdated"`
	Sectors     []SectorQuote `json:"sectors"`
}

// SectorSummary is derived from a SectorSnapshot.
type SectorSummary struct {
	Advancing     int          `json:"advancing"`
	Declining     int          `json:"declining"`
	Best          *SectorQuote `json:"bestSector,omitempty"`
	Worst         *SectorQuote `json:"worstSector,omitempty"`
	AverageChange float64      `json:"averageChange"`
	Sentiment     string       `json:"marketSentiment"` // Bullish, Bearish, Neutral
}

// MarketIndex is one market-overview symbol (index, commodity, crypto).
type MarketIndex struct {
	Symbol        string  `json:"symbol"`
	ShortName     string  `json:"shortName"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	IsPositive    bool    `json:"isPositive"`
	Err           bool    `json:"error,omitempty"`
}

// IntradayPoint is one bar of an intraday series.
type IntradayPoint struct {
	Timestamp int64   `json:"t"`
	Close     float64 `json:"c"`
}

// IntradaySeries is a symbol's intraday price history.
type IntradaySeries struct {
	Symbol string          `json:"symbol"`
	Points []IntradayPoint `json:"points"`
}
