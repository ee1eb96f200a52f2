package helperd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is where the daemon listens by default.
const DefaultBaseURL = "http://localhost:5000"

// Client calls the local control daemon.
type Client struct {
	// BaseURL of the daemon. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient used for requests. Defaults to a client with a short
	// timeout; the daemon is on localhost, so slow means absent.
	HTTPClient *http.Client
}

// NewClient creates a client for the daemon at its default address.
func NewClient() *Client {
	return &Client{}
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 3 * time.Second}
}

// Launch asks the daemon to start the named application.
func (c *Client) Launch(ctx context.Context, app string) error {
	return c.get(ctx, "/launch?app="+url.QueryEscape(app))
}

// Shutdown asks the daemon to shut the machine down.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.get(ctx, "/shutdown")
}

// Restart asks the daemon to restart the machine.
func (c *Client) Restart(ctx context.Context) error {
	return c.get(ctx, "/restart")
}

// Lock asks the daemon to lock the machine.
func (c *Client) Lock(ctx context.Context) error {
	return c.get(ctx, "/lock")
}

func (c *Client) get(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("local command node offline: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("local command node refused: %s", resp.Status)
	}
	return nil
}
