// Package cms reads sermons and music from the Contentful Delivery API.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultHost = "https://cdn.contentful.com"

type Config struct {
	SpaceID     string
	AccessToken string
	Environment string
	Host        string
	Timeout     time.Duration
}

// Client is safe for concurrent use; build one and share it.
type Client struct {
	base        *url.URL
	spaceID     string
	accessToken string
	environment string
	http        *http.Client
	logger      *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = DefaultHost
	}
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}
	base, err := url.Parse(strings.TrimRight(host, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid cms host %q: %w", cfg.Host, err)
	}

	env := strings.TrimSpace(cfg.Environment)
	if env == "" {
		env = "master"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		base:        base,
		spaceID:     strings.TrimSpace(cfg.SpaceID),
		accessToken: strings.TrimSpace(cfg.AccessToken),
		environment: env,
		http:        &http.Client{Timeout: timeout},
		logger:      logger,
	}, nil
}

func (c *Client) entriesURL(contentType string, limit int) string {
	u := *c.base
	u.Path = path.Join(u.Path, "spaces", c.spaceID, "environments", c.environment, "entries")
	q := url.Values{}
	q.Set("content_type", contentType)
	q.Set("include", "1")
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// entries fetches one page of entries of contentType with one level of
// linked-entry resolution. limit 0 leaves the CMS default in place.
func (c *Client) entries(ctx context.Context, contentType string, limit int) (*collection, error) {
	if c.spaceID == "" || c.accessToken == "" {
		return nil, NewAuthError("missing cms credentials", contentType, 0)
	}

	reqURL := c.entriesURL(contentType, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, NewNetworkError(contentType, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, NewNetworkError(contentType, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError(contentType, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(contentType, resp.StatusCode, body)
	}

	var out collection
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, NewSchemaError("malformed cms response", contentType, resp.StatusCode, err)
	}

	c.logger.Debug("CMS entries fetched",
		zap.String("content_type", contentType),
		zap.Int("items", len(out.Items)),
		zap.Int("total", out.Total),
	)
	return &out, nil
}

func (c *Client) statusError(contentType string, status int, body []byte) error {
	var apiErr apiError
	message := http.StatusText(status)
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		message = apiErr.Message
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return NewAuthError(message, contentType, status)
	case status == http.StatusTooManyRequests || status >= 500:
		return NewServerError(contentType, status)
	default:
		return NewSchemaError(message, contentType, status, nil)
	}
}
