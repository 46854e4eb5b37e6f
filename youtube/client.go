// Package youtube assembles the tutorial and podcast catalogue from the
// YouTube Data API v3: playlist listing, playlist resolution, and full video
// aggregation with duration rendering.
package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	itransport "ytcatalog/internal/transport"
)

// pageSize is the provider's hard per-page and per-batch maximum.
const pageSize = 50

// Options configures Client construction. A nil value uses defaults.
type Options struct {
	// Endpoint overrides the API base URL. Tests point this at a stub.
	Endpoint string

	// HTTP configures the underlying pooled (and optionally rate-limited)
	// client. Nil uses transport defaults.
	HTTP *itransport.Config

	// DetailWorkers caps concurrent video-detail batch calls. Defaults to 4.
	DetailWorkers int
}

// Client is a read-only YouTube Data API client authenticated by API key.
type Client struct {
	svc           *yt.Service
	detailWorkers int
}

// New constructs a Client. The API key is required; resolution of the key
// happens upstream, a missing key is the caller's "not configured" case.
func New(ctx context.Context, apiKey string, opts *Options) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("youtube: api key required")
	}
	if opts == nil {
		opts = &Options{}
	}

	httpClient := itransport.NewClient(opts.HTTP)
	httpClient.Transport = &transport.APIKey{
		Key:       apiKey,
		Transport: httpClient.Transport,
	}

	copts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if opts.Endpoint != "" {
		copts = append(copts, option.WithEndpoint(opts.Endpoint))
	}

	svc, err := yt.NewService(ctx, copts...)
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}

	workers := opts.DetailWorkers
	if workers < 1 {
		workers = 4
	}

	return &Client{svc: svc, detailWorkers: workers}, nil
}
