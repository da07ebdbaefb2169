package weather

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the OpenWeather API root.
const DefaultBaseURL = "https://api.openweathermap.org"

// upstreamTimeout bounds every provider call. There is no retry or backoff.
const upstreamTimeout = 10 * time.Second

// Doer abstracts *http.Client so tests can substitute transports.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the OpenWeather API and normalizes its payloads. Units are
// fixed to metric and description strings to Brazilian Portuguese.
type Client struct {
	baseURL string
	apiKey  string
	http    Doer
	log     *logrus.Logger
}

// NewClient builds a Client. An empty baseURL falls back to DefaultBaseURL,
// a nil logger to a default logrus instance.
func NewClient(baseURL, apiKey string, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: upstreamTimeout},
		log:     logger,
	}
}

// get performs one provider call and decodes the body into out. Every failure
// mode comes back as *UpstreamError; nothing is retried.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	query.Set("appid", c.apiKey)
	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &UpstreamError{Message: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Warn("openweather request failed")
		return &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.WithField("status", resp.StatusCode).WithField("path", path).Warn("openweather returned error status")
		return &UpstreamError{Message: upstreamMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{Message: genericUpstreamMessage}
	}
	return nil
}

// upstreamMessage extracts the provider's error message, falling back to the
// generic Portuguese one when the body is unparseable.
func upstreamMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return genericUpstreamMessage
}
