// Package ergast fetches race classifications and championship standings
// from the Ergast F1 API.
package ergast

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultRootURL = "http://ergast.com/api/f1/"
	DefaultSeason  = "current"
	DefaultTimeout = 15 * time.Second

	lastRound = "last"
)

// ErrStatus is returned for any non-2xx response.
var ErrStatus = errors.New("unexpected http status")

// StatusError carries the status of a failed request.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ergast: GET %s: %s", e.URL, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrStatus }

// Client builds request URLs from a root and a season. It keeps no
// connection state: every call uses a fresh HTTP client.
type Client struct {
	root    string
	season  string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithSeason selects the season segment of the URL, e.g. "2023".
func WithSeason(season string) Option {
	return func(c *Client) {
		if season != "" {
			c.season = season
		}
	}
}

// WithTimeout bounds each request. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New returns a Client for the API rooted at root. An empty root uses
// DefaultRootURL.
func New(root string, opts ...Option) *Client {
	if root == "" {
		root = DefaultRootURL
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	c := &Client{root: root, season: DefaultSeason, timeout: DefaultTimeout}
	for _, o := range opts {
		o(c)
	}
	return c
}

// LastRaceURL is the base of the most recent race's resources,
// e.g. http://ergast.com/api/f1/current/last/.
func (c *Client) LastRaceURL() string {
	return c.root + c.season + "/" + lastRound + "/"
}

// SeasonURL is the base of season-wide resources.
func (c *Client) SeasonURL() string {
	return c.root + c.season + "/"
}

// get performs one GET and parses the body. Transport errors are returned
// as they come. The per-call client drops its idle connections on return.
func (c *Client) get(ctx context.Context, url string) (Document, error) {
	client := resty.New().SetTimeout(c.timeout)
	defer client.GetClient().CloseIdleConnections()

	resp, err := client.
		R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		return Document{}, err
	}
	if !resp.IsSuccess() {
		return Document{}, &StatusError{URL: url, Code: resp.StatusCode(), Status: resp.Status()}
	}
	doc, err := Parse(resp.Body())
	if err != nil {
		return Document{}, fmt.Errorf("ergast: GET %s: %w", url, err)
	}
	return doc, nil
}
