// Package cloudmedia is the HTTP client for the hosted media provider.
// The provider owns storage, transcoding, analysis and every delivery URL;
// this package only speaks its upload/admin API and builds delivery URLs
// from content identifiers.
package cloudmedia

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/reelvault/reelvault-go/internal/port"
)

// ChunkSize is the fixed size of each sequential write during a chunked
// upload. The provider rejects intermediate chunks smaller than 5 MB, so the
// value is not configurable.
const ChunkSize = 5_000_000

const defaultAPIBase = "https://api.cloudmedia.io"

type Client struct {
	cloudName string
	apiKey    string
	apiSecret string

	apiBase       string
	deliveryBase  string
	httpClient    *http.Client
	uploadTimeout time.Duration
	now           func() time.Time
}

// compile-time check: *Client must satisfy port.MediaProcessor
var _ port.MediaProcessor = (*Client)(nil)

type Option func(*Client)

// WithAPIBase overrides the provider API endpoint (tests).
func WithAPIBase(base string) Option {
	return func(c *Client) { c.apiBase = base }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func withClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func NewClient(cloudName, apiKey, apiSecret string, uploadTimeout time.Duration, opts ...Option) *Client {
	log.Println("initialising media provider client...")

	c := &Client{
		cloudName:     cloudName,
		apiKey:        apiKey,
		apiSecret:     apiSecret,
		apiBase:       defaultAPIBase,
		uploadTimeout: uploadTimeout,
		httpClient:    &http.Client{},
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.deliveryBase = fmt.Sprintf("https://res.cloudmedia.io/%s", c.cloudName)
	return c
}

func (c *Client) uploadURL(resourceType string) string {
	return fmt.Sprintf("%s/v1_1/%s/%s/upload", c.apiBase, c.cloudName, resourceType)
}

func (c *Client) destroyURL(resourceType string) string {
	return fmt.Sprintf("%s/v1_1/%s/%s/destroy", c.apiBase, c.cloudName, resourceType)
}

func (c *Client) resourceURL(resourceType, publicID string) string {
	return fmt.Sprintf("%s/v1_1/%s/resources/%s/upload/%s", c.apiBase, c.cloudName, resourceType, publicID)
}
