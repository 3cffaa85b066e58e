package treedb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"elaundry/pkg/utils"
)

// Client talks to the managed JSON tree database over its REST surface.
// Every node is addressed by a slash-separated path; reading an absent node
// yields a JSON null body.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

func New(config utils.TreeDBConfig) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(config.BaseURL, "/"),
		authToken: config.AuthToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Node keys may contain spaces (category names double as keys), so each
// path segment is escaped individually.
func (c *Client) url(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	u := c.baseURL + "/" + strings.Join(segments, "/") + ".json"
	if c.authToken != "" {
		u += "?auth=" + url.QueryEscape(c.authToken)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s body: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tree database request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response for %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tree database %s %s returned HTTP %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	return data, nil
}

// Get reads the node at path into out. It returns false when the node is
// absent, which the backend signals with a JSON null body.
func (c *Client) Get(ctx context.Context, path string, out any) (bool, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}

	if len(data) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode node %s: %w", path, err)
	}

	return true, nil
}

// Set writes the full value at path, replacing whatever is there.
func (c *Client) Set(ctx context.Context, path string, value any) error {
	_, err := c.do(ctx, http.MethodPut, path, value)
	return err
}

// Update patches individual fields of the node at path.
func (c *Client) Update(ctx context.Context, path string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPatch, path, fields)
	return err
}

// Remove deletes the node at path. Removing an absent node is not an error.
func (c *Client) Remove(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
