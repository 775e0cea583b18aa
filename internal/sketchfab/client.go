// Package sketchfab is a client for the Sketchfab Data API v3 that maps models into FurnitureItems.
package sketchfab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vibear-app/vibear/internal/models"
)

// DefaultBaseURL is the public Data API root
const DefaultBaseURL = "https://api.sketchfab.com/v3"

// SortByLikes orders results by descending like count
const SortByLikes = "-likeCount"

// ErrNotFound is returned by Model for an unknown uid
var ErrNotFound = errors.New("model not found")

// Client talks to the Sketchfab search and model endpoints
type Client struct {
	http *resty.Client
}

// Query is one search request
type Query struct {
	Text   string
	Page   int
	Count  int
	SortBy string
}

// SearchPage is one page of transformed search results
type SearchPage struct {
	Results  []models.FurnitureItem `json:"results"`
	Total    int                    `json:"total"`
	Next     string                 `json:"next,omitempty"`
	Previous string                 `json:"previous,omitempty"`
}

type searchResponse struct {
	Results  []apiModel `json:"results"`
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
}

// NewClient creates a client; an empty baseURL targets the public API
func NewClient(token, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if token != "" {
		client.SetAuthScheme("Token").SetAuthToken(token)
	}

	return &Client{http: client}
}

// Search runs one model search. A reply without a results array is an empty page, not an error.
func (c *Client) Search(ctx context.Context, q Query) (*SearchPage, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Count <= 0 {
		q.Count = 20
	}
	if q.SortBy == "" {
		q.SortBy = SortByLikes
	}

	var body searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"type":    "models",
			"q":       q.Text,
			"sort_by": q.SortBy,
			"page":    strconv.Itoa(q.Page),
			"count":   strconv.Itoa(q.Count),
		}).
		SetResult(&body).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("failed to search models: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("sketchfab search returned status %d: %s", resp.StatusCode(), resp.String())
	}

	page := &SearchPage{
		Results: make([]models.FurnitureItem, 0, len(body.Results)),
	}
	if body.Results == nil {
		return page, nil
	}

	for _, m := range body.Results {
		page.Results = append(page.Results, m.toItem(listURLs))
	}
	page.Total = body.Count
	if body.Next != nil {
		page.Next = *body.Next
	}
	if body.Previous != nil {
		page.Previous = *body.Previous
	}

	return page, nil
}

// Model fetches a single model by uid
func (c *Client) Model(ctx context.Context, uid string) (models.FurnitureItem, error) {
	var m apiModel
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&m).
		Get("/models/" + url.PathEscape(uid))
	if err != nil {
		return models.FurnitureItem{}, fmt.Errorf("failed to fetch model %s: %w", uid, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return models.FurnitureItem{}, fmt.Errorf("model %s: %w", uid, ErrNotFound)
	case resp.IsError():
		return models.FurnitureItem{}, fmt.Errorf("sketchfab model returned status %d", resp.StatusCode())
	}

	if m.UID == "" {
		m.UID = uid
	}
	return m.toItem(detailURLs), nil
}
