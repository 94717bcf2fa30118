// Package utils holds small helpers shared across packages.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-news-kiosk"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(15 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own connection pool, the
// kiosk user agent and the given request timeout. A non-positive timeout
// leaves resty's default (none) in place.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
