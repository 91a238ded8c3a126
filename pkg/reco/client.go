package reco

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Item is one product recommendation returned by the recommendation
// microservice.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Label returns the display name of the item, whichever field the
// recommendation service filled.
func (i Item) Label() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// Client calls the ShopyVerse recommendation microservice. Callers treat
// every failure as "no recommendations" — this collaborator is
// quality-enhancing, never correctness-critical.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *Client) Recommendations(ctx context.Context, productID string) ([]Item, error) {
	endpoint := fmt.Sprintf("%s/api/recommendations?product_id=%s", c.baseURL, url.QueryEscape(productID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reco request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reco api returned status %d", resp.StatusCode)
	}

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode reco response: %w", err)
	}
	return items, nil
}
