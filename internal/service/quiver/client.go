package quiver

import (
	"context"
	"fmt"
	"strconv"

	"StonkWatch/internal/domain/models"
	httpclient "StonkWatch/pkg/http"
)

// Client fetches congressional trading, lobbying, and government contract
// disclosures from the Quiver Quantitative API.
type Client struct {
	http     *httpclient.Client
	baseURL  string
	token    string
	pageSize int
}

// NewClient creates a Quiver API client.
func NewClient(http *httpclient.Client, baseURL, token string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &Client{http: http, baseURL: baseURL, token: token, pageSize: pageSize}
}

// Lobbying fetches the latest lobbying disclosures.
func (c *Client) Lobbying(ctx context.Context, page, pageSize int) ([]models.LobbyingRecord, error) {
	var out []models.LobbyingRecord
	if err := c.get(ctx, "/live/lobbying", "", page, pageSize, &out); err != nil {
		return nil, fmt.Errorf("quiver lobbying: %w", err)
	}
	return out, nil
}

// LobbyingHistory fetches a ticker's lobbying disclosure history.
func (c *Client) LobbyingHistory(ctx context.Context, ticker string, page, pageSize int) ([]models.LobbyingRecord, error) {
	var out []models.LobbyingRecord
	if err := c.get(ctx, "/historical/lobbying/", ticker, page, pageSize, &out); err != nil {
		return nil, fmt.Errorf("quiver lobbying history %s: %w", ticker, err)
	}
	return out, nil
}

// CongressTrades fetches the latest congressional trade disclosures.
func (c *Client) CongressTrades(ctx context.Context, page, pageSize int) ([]models.TradeRecord, error) {
	var out []models.TradeRecord
	if err := c.get(ctx, "/live/congresstrading", "", page, pageSize, &out); err != nil {
		return nil, fmt.Errorf("quiver congress trades: %w", err)
	}
	return out, nil
}

// CongressTradeHistory fetches a ticker's congressional trade history.
func (c *Client) CongressTradeHistory(ctx context.Context, ticker string, page, pageSize int) ([]models.TradeRecord, error) {
	var out []models.TradeRecord
	if err := c.get(ctx, "/historical/congresstrading/", ticker, page, pageSize, &out); err != nil {
		return nil, fmt.Errorf("quiver congress history %s: %w", ticker, err)
	}
	return out, nil
}

// Contracts fetches the latest government contract awards.
func (c *Client) Contracts(ctx context.Context, page, pageSize int) ([]models.ContractRecord, error) {
	var out []models.ContractRecord
	if err := c.get(ctx, "/live/govcontractsall", "", page, pageSize, &out); err != nil {
		return nil, fmt.Errorf("quiver contracts: %w", err)
	}
	return out, nil
}

// ContractHistory fetches a ticker's government contract history.
func (c *Client) ContractHistory(ctx context.Context, ticker string, page, pageSize int) ([]models.ContractRecord, error) {
	var out []models.ContractRecord
	if err := c.get(ctx, "/historical/govcontractsall/", ticker, page, pageSize, &out); err != nil {
		return nil, fmt.Errorf("quiver contract history %s: %w", ticker, err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path, ticker string, page, pageSize int, dest interface{}) error {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = c.pageSize
	}
	return c.http.SendAndParse(ctx, &httpclient.RequestOptions{
		Method: httpclient.MethodGet,
		URL:    c.baseURL + path + ticker,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.token,
		},
		QueryParams: map[string]string{
			"page":      strconv.Itoa(page),
			"page_size": strconv.Itoa(pageSize),
		},
	}, dest)
}
