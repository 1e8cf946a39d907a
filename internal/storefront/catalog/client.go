// internal/storefront/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the catalog/auth service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// CategoryRule is the wire form of one classifier rule.
type CategoryRule struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchProducts loads the full catalog. Non-2xx responses carry a
// {message} body which becomes the error text shown to the user.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	var payload struct {
		Items []Product `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/products", &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchCategoryRules loads the classifier rule table in rule order.
func (c *Client) FetchCategoryRules(ctx context.Context) ([]CategoryRule, error) {
	var payload struct {
		Items []CategoryRule `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/categories", &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(errorMessage(body, resp.StatusCode))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func errorMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("catalog service returned status %d", status)
}
