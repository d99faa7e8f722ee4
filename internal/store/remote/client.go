// Package remote fetches the todo list from its HTTP endpoint.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Makepad-fr/todoboard/internal/model"
	"github.com/Makepad-fr/todoboard/internal/store/jsonstore"
	"github.com/Makepad-fr/todoboard/internal/store/recordstore"
)

// DefaultEndpoint is the public todo list the board reads when nothing else is configured.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/todos"

// ErrFetch marks every failure to obtain the list: transport errors and non-2xx statuses alike.
var ErrFetch = errors.New("data could not be fetched")

// TokenFunc returns a bearer token, or "" to send none.
type TokenFunc func() string

type Client struct {
	endpoint string
	http     *http.Client
	token    TokenFunc
	log      *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithToken(f TokenFunc) Option { return func(c *Client) { c.token = f } }

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Fetch issues a single GET. It is not retried.
func (c *Client) Fetch(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "todoboard")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("fetch failed", zap.String("endpoint", c.endpoint), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		c.log.Warn("fetch rejected",
			zap.String("endpoint", c.endpoint),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %s", ErrFetch, resp.Status)
	}

	recs, err := jsonstore.Decode(resp.Body)
	if err != nil {
		c.log.Warn("fetch body unreadable", zap.String("endpoint", c.endpoint), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	c.log.Debug("fetched records",
		zap.String("endpoint", c.endpoint),
		zap.Int("count", len(recs)),
		zap.Duration("took", time.Since(start)))
	return recs, nil
}

// Open picks a source for endpoint: http(s) URLs get a Client,
// file:// URLs read a local JSON file of the same shape.
func Open(endpoint string, opts ...Option) (recordstore.Source, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("endpoint %q: %w", endpoint, err)
	}
	switch u.Scheme {
	case "http", "https":
		return NewClient(endpoint, opts...), nil
	case "file":
		p := u.Path
		if u.Host != "" && u.Host != "localhost" {
			// file://relative/path parses "relative" as the host
			p = u.Host + u.Path
		}
		if p == "" {
			return nil, fmt.Errorf("endpoint %q: empty file path", endpoint)
		}
		return jsonstore.FileSource{Path: p}, nil
	}
	return nil, fmt.Errorf("endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
}
