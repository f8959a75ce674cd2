package newsapi

import (
	"context"
	"fmt"

	"StonkWatch/internal/domain/models"
	httpclient "StonkWatch/pkg/http"
)

type headlinesResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Client fetches top headlines from NewsAPI.
type Client struct {
	http    *httpclient.Client
	baseURL string
	apiKey  string
	country string
}

// NewClient creates a NewsAPI client.
func NewClient(http *httpclient.Client, baseURL, apiKey, country string) *Client {
	return &Client{http: http, baseURL: baseURL, apiKey: apiKey, country: country}
}

// Headlines fetches business and technology headlines and merges them into
// one list, business first. Each article is tagged with its section.
func (c *Client) Headlines(ctx context.Context) ([]models.NewsArticle, error) {
	business, err := c.topHeadlines(ctx, "business", "Top Story")
	if err != nil {
		return nil, err
	}
	tech, err := c.topHeadlines(ctx, "technology", "Tech")
	if err != nil {
		return nil, err
	}
	return append(business, tech...), nil
}

func (c *Client) topHeadlines(ctx context.Context, category, label string) ([]models.NewsArticle, error) {
	var resp headlinesResponse
	err := c.http.SendAndParse(ctx, &httpclient.RequestOptions{
		Method: httpclient.MethodGet,
		URL:    c.baseURL + "/top-headlines",
		QueryParams: map[string]string{
			"country":  c.country,
			"language": "en",
			"category": category,
			"apiKey":   c.apiKey,
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("newsapi %s headlines: %w", category, err)
	}

	out := make([]models.NewsArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		out = append(out, models.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			Type:        label,
		})
	}
	return out, nil
}
