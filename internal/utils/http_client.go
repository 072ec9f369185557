package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryCount   = 2
	defaultRetryWait    = 200 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second
)

// HTTPClient wraps a resty.Client preconfigured for the remote store API.
//
// Responses with 429 or 503 are retried with backoff; resty honours a
// Retry-After header when the server sends one. Other failures are returned
// to the caller as-is.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.SetBaseURL(base).R().Get("/api/account/status")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(isTransientResponse)

	return &HTTPClient{Client: client}
}

func isTransientResponse(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}
	switch resp.StatusCode() {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return true
	}
	return false
}
