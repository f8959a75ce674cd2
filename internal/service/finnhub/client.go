package finnhub

import (
	"context"
	"fmt"

	"StonkWatch/internal/domain/models"
	httpclient "StonkWatch/pkg/http"
)

// quoteResponse is finnhub's /quote wire shape.
type quoteResponse struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
}

// Client fetches live stock quotes from the Finnhub API.
type Client struct {
	http    *httpclient.Client
	baseURL string
	apiKey  string
}

// NewClient creates a Finnhub API client.
func NewClient(http *httpclient.Client, baseURL, apiKey string) *Client {
	return &Client{http: http, baseURL: baseURL, apiKey: apiKey}
}

// Quotes fetches a quote per ticker. The whole batch fails on the first
// provider error so the caller never caches a partial refresh.
func (c *Client) Quotes(ctx context.Context, tickers []string) (map[string]models.Quote, error) {
	out := make(map[string]models.Quote, len(tickers))
	for _, ticker := range tickers {
		var resp quoteResponse
		err := c.http.SendAndParse(ctx, &httpclient.RequestOptions{
			Method: httpclient.MethodGet,
			URL:    c.baseURL + "/quote",
			QueryParams: map[string]string{
				"symbol": ticker,
				"token":  c.apiKey,
			},
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("finnhub quote %s: %w", ticker, err)
		}
		out[ticker] = models.Quote{
			Current:       resp.Current,
			Change:        resp.Change,
			PercentChange: resp.PercentChange,
			Open:          resp.Open,
			PreviousClose: resp.PreviousClose,
		}
	}
	return out, nil
}
