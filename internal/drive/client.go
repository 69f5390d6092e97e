package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/quizdrill/quizdrill-backend/internal/config"
)

// fileFields is the projection requested from the listing endpoint.
const fileFields = "files(id,name,size,createdTime,parents)"

// Client talks to the remote file store. A nil token source means
// unauthenticated requests (useful against local test servers).
type Client struct {
	baseURL string
	hc      *http.Client
	ts      *tokenSource
	log     *slog.Logger
}

// NewClient builds a store client from DriveConfig. When credentials are
// configured, every request carries a service-account bearer token.
func NewClient(cfg config.DriveConfig, log *slog.Logger) (*Client, error) {
	hc := &http.Client{Timeout: cfg.HTTPTimeout}

	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		hc:      hc,
		log:     log,
	}

	if cfg.HasCredentials() {
		ts, err := newTokenSource(cfg.ServiceAccountEmail, cfg.PrivateKey, cfg.TokenURL, hc)
		if err != nil {
			return nil, fmt.Errorf("drive: %w", err)
		}
		c.ts = ts
	}

	return c, nil
}

// List runs one listing query and returns the matching file descriptors.
// Zero matches is a nil slice, not an error.
func (c *Client) List(ctx context.Context, q *Query) ([]File, error) {
	params := url.Values{}
	params.Set("q", q.String())
	params.Set("fields", fileFields)
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.OrderBy != "" {
		params.Set("orderBy", q.OrderBy)
	}

	endpoint := c.baseURL + "/files?" + params.Encode()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	var lr listResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	c.log.Debug("drive listing", slog.String("query", q.String()), slog.Int("matches", len(lr.Files)))

	return lr.Files, nil
}

// Download fetches the full content of one file, buffered into a string.
func (c *Client) Download(ctx context.Context, fileID string) (string, error) {
	endpoint := c.baseURL + "/files/" + url.PathEscape(fileID) + "?alt=media"

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", fileID, err)
	}

	return string(body), nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if c.ts != nil {
		token, err := c.ts.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("authorize: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return nil, fmt.Errorf("store returned %d: %s", resp.StatusCode, msg)
	}

	return body, nil
}
