package yahoo

import (
	"context"
	"fmt"
	"math"

	"StonkWatch/internal/domain/models"
	httpclient "StonkWatch/pkg/http"
	applogger "StonkWatch/pkg/logger"
)

type sectorETF struct {
	Symbol string
	Name   string
	Color  string
}

// sectorETFs lists the S&P sector SPDR funds tracked on the dashboard.
var sectorETFs = []sectorETF{
	{"XLK", "Technology", "#3b82f6"},
	{"XLF", "Financials", "#10b981"},
	{"XLV", "Healthcare", "#ef4444"},
	{"XLE", "Energy", "#f59e0b"},
	{"XLI", "Industrials", "#6366f1"},
	{"XLY", "Consumer Discretionary", "#ec4899"},
	{"XLP", "Consumer Staples", "#14b8a6"},
	{"XLU", "Utilities", "#8b5cf6"},
	{"XLRE", "Real Estate", "#f97316"},
	{"XLB", "Materials", "#84cc16"},
	{"XLC", "Communication Services", "#06b6d4"},
}

type overviewSymbol struct {
	Symbol    string
	ShortName string
	Name      string
}

// overviewSymbols lists the indices, commodities, and crypto shown in the
// market overview strip.
var overviewSymbols = []overviewSymbol{
	{"^GSPC", "SPX", "S&P 500"},
	{"^RUT", "RUT", "Russell 2000"},
	{"DX-Y.NYB", "DXY", "Dollar Index"},
	{"^VIX", "VIX", "VIX"},
	{"BTC-USD", "BTC", "Bitcoin"},
	{"GC=F", "GOLD", "Gold"},
	{"SI=F", "SILVER", "Silver"},
	{"CL=F", "OIL", "Crude Oil"},
	{"SPY", "SPY", "SPDR S&P 500"},
	{"QQQ", "QQQ", "Invesco QQQ"},
}

// chartResponse is Yahoo's v8 chart wire shape, trimmed to the fields used.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"chart"`
}

// Client fetches sector, index, and intraday data from the Yahoo Finance
// chart API.
type Client struct {
	http    *httpclient.Client
	baseURL string
	logger  *applogger.Logger
}

// NewClient creates a Yahoo Finance chart client.
func NewClient(http *httpclient.Client, baseURL string, l *applogger.Logger) *Client {
	return &Client{http: http, baseURL: baseURL, logger: l}
}

// Sectors fetches daily performance for every sector ETF. Symbols the
// provider fails on are returned as errored entries rather than dropping
// the whole batch.
func (c *Client) Sectors(ctx context.Context) ([]models.SectorQuote, error) {
	out := make([]models.SectorQuote, 0, len(sectorETFs))
	var failures int
	for _, etf := range sectorETFs {
		price, prev, err := c.dailySnapshot(ctx, etf.Symbol)
		if err != nil {
			c.logger.Warn("sector fetch failed",
				applogger.String("symbol", etf.Symbol), applogger.Error(err))
			failures++
			out = append(out, models.SectorQuote{
				Symbol: etf.Symbol, Name: etf.Name, Color: etf.Color, Err: true,
			})
			continue
		}
		change := price - prev
		out = append(out, models.SectorQuote{
			Symbol:        etf.Symbol,
			Name:          etf.Name,
			Color:         etf.Color,
			Price:         round2(price),
			Change:        round2(change),
			PercentChange: round2(change / prev * 100),
			PreviousClose: round2(prev),
			IsPositive:    change >= 0,
		})
	}
	if failures == len(sectorETFs) {
		return nil, fmt.Errorf("yahoo sectors: all %d symbols failed", failures)
	}
	return out, nil
}

// Overview fetches the market overview symbols.
func (c *Client) Overview(ctx context.Context) ([]models.MarketIndex, error) {
	out := make([]models.MarketIndex, 0, len(overviewSymbols))
	var failures int
	for _, sym := range overviewSymbols {
		price, prev, err := c.dailySnapshot(ctx, sym.Symbol)
		if err != nil {
			c.logger.Warn("overview fetch failed",
				applogger.String("symbol", sym.Symbol), applogger.Error(err))
			failures++
			out = append(out, models.MarketIndex{
				Symbol: sym.Symbol, ShortName: sym.ShortName, Name: sym.Name, Err: true,
			})
			continue
		}
		change := price - prev
		out = append(out, models.MarketIndex{
			Symbol:        sym.Symbol,
			ShortName:     sym.ShortName,
			Name:          sym.Name,
			Price:         price,
			Change:        change,
			ChangePercent: change / prev * 100,
			IsPositive:    change >= 0,
		})
	}
	if failures == len(overviewSymbols) {
		return nil, fmt.Errorf("yahoo overview: all %d symbols failed", failures)
	}
	return out, nil
}

// Intraday fetches a symbol's 5-minute bars for the current session.
func (c *Client) Intraday(ctx context.Context, symbol string) (*models.IntradaySeries, error) {
	resp, err := c.chart(ctx, symbol, map[string]string{"interval": "5m", "range": "1d"})
	if err != nil {
		return nil, fmt.Errorf("yahoo intraday %s: %w", symbol, err)
	}

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo intraday %s: no quote indicators", symbol)
	}
	closes := result.Indicators.Quote[0].Close

	series := &models.IntradaySeries{Symbol: symbol}
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		series.Points = append(series.Points, models.IntradayPoint{
			Timestamp: ts,
			Close:     *closes[i],
		})
	}
	return series, nil
}

func (c *Client) dailySnapshot(ctx context.Context, symbol string) (price, previousClose float64, err error) {
	resp, err := c.chart(ctx, symbol, map[string]string{"interval": "1d", "range": "2d"})
	if err != nil {
		return 0, 0, err
	}
	meta := resp.Chart.Result[0].Meta
	prev := meta.ChartPreviousClose
	if prev == 0 {
		prev = meta.PreviousClose
	}
	if prev == 0 {
		return 0, 0, fmt.Errorf("%s: no previous close", symbol)
	}
	return meta.RegularMarketPrice, prev, nil
}

func (c *Client) chart(ctx context.Context, symbol string, params map[string]string) (*chartResponse, error) {
	var resp chartResponse
	err := c.http.SendAndParse(ctx, &httpclient.RequestOptions{
		Method:      httpclient.MethodGet,
		URL:         c.baseURL + "/chart/" + symbol,
		QueryParams: params,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: empty chart result", symbol)
	}
	return &resp, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
