package score

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Entry is one row of the remote scoreboard.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Client submits scores to and lists scores from a remote scoreboard. The
// endpoint's JSON shape is the server's concern; the engine never sees it.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit posts a finished run to the scoreboard.
func (c *Client) Submit(ctx context.Context, name string, score int) error {
	body, err := json.Marshal(Entry{Name: name, Score: score})
	if err != nil {
		return fmt.Errorf("score: marshal submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/scores", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("score: build submission: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("score: submit: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("score: submit: unexpected status %s", resp.Status)
	}
	return nil
}

// Top fetches the best scores, ordered by the server.
func (c *Client) Top(ctx context.Context, limit int) ([]Entry, error) {
	u := c.baseURL + "/scores?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("score: build listing: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("score: list: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("score: list: unexpected status %s", resp.Status)
	}
	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("score: decode listing: %w", err)
	}
	return entries, nil
}
