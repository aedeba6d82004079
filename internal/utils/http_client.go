package utils

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-job-keeper-client"

// HTTPClient embeds *resty.Client and presets it for the job-keeper API:
// JSON content negotiation, a user agent, and opt-in retries of requests the
// server rejected without processing.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool.
// Retries are disabled until [HTTPClient.EnableRetries] is called.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}

// EnableRetries retries a request up to count times when the server answers
// 429, 502, 503 or 504. The wait between attempts follows the Retry-After
// header when present, bounded by [wait, maxWait], and exponential backoff
// otherwise.
func (c *HTTPClient) EnableRetries(count int, wait, maxWait time.Duration) *HTTPClient {
	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(maxWait).
		SetRetryAfter(retryAfter).
		AddRetryCondition(retryableResponse)
	return c
}

func retryableResponse(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}

	switch resp.StatusCode() {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// retryAfter reads the delay-seconds form of Retry-After. Zero lets resty
// fall back to its backoff.
func retryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	if resp == nil {
		return 0, nil
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(resp.Header().Get("Retry-After")))
	if err != nil || seconds <= 0 {
		return 0, nil
	}

	return time.Duration(seconds) * time.Second, nil
}
