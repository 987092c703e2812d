// Package newsapi provides the HTTP client for the upstream news search API.
package newsapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/loader"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/logger"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/models"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/pkg/retry"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/pkg/text"
)

// Client errors.
var (
	// ErrMissingAPIKey indicates no credential was configured. It is
	// reported before any request leaves the process.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrUnexpectedStatus indicates a response with a non-success status.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrNetwork indicates the request still failed after every retry
	// attempt.
	ErrNetwork = errors.New("network request failed")
)

const (
	defaultBaseURL = "https://newsapi.org/v2"
	defaultTimeout = 10 * time.Second
	defaultMaxBody = 4 * 1024 * 1024

	userAgent = "newsgenie/1.0"
)

// Query holds the parameters of one article search.
type Query struct {
	Keyword  string
	Language string
	PageSize int
}

// ClientConfig bundles the settings for NewClient. Zero values select the
// built-in defaults.
type ClientConfig struct {
	APIKey       string
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64
	Retry        retry.Policy
	Logger       *logger.Logger
}

// Client queries the news search API with bounded retries.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	maxBody int64
	policy  retry.Policy
	log     *logger.Logger
}

// NewClient creates a client from cfg.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}

	log := cfg.Logger
	if log == nil {
		log = logger.New("info")
	}

	log = log.With("component", "newsapi")

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		maxBody: maxBody,
		policy:  cfg.Retry,
		log:     log,
	}
}

// Everything searches articles matching q, newest first. Transport and
// status failures are retried per the configured policy; a response that
// arrives but does not decode is returned as a parse failure without
// further attempts.
func (c *Client) Everything(ctx context.Context, q Query) (*models.RawResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint, err := c.buildURL(q)
	if err != nil {
		return nil, err
	}

	var response *models.RawResponse

	attempts := 0

	err = retry.Do(ctx, c.policy, retryableFetch, func() error {
		attempts++

		body, fetchErr := c.get(ctx, endpoint)
		if fetchErr != nil {
			c.log.Warn("fetch attempt failed", "attempt", attempts, "error", fetchErr)

			return fetchErr
		}

		parsed, parseErr := loader.FromBytes(body)
		if parseErr != nil {
			return parseErr
		}

		response = parsed

		return nil
	})
	if err != nil {
		if errors.Is(err, loader.ErrInvalidJSON) {
			return nil, err
		}

		return nil, fmt.Errorf("%w after %d attempts: %w", ErrNetwork, attempts, err)
	}

	c.log.Debug("fetch succeeded", "attempts", attempts, "status", response.Status())

	return response, nil
}

// buildURL assembles the /everything endpoint URL for q.
func (c *Client) buildURL(q Query) (string, error) {
	u, err := url.Parse(c.baseURL + "/everything")
	if err != nil {
		return "", fmt.Errorf("invalid base URL %s: %w", c.baseURL, err)
	}

	params := url.Values{}
	params.Set("q", q.Keyword)
	params.Set("language", q.Language)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	params.Set("apiKey", c.apiKey)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// get performs a single request and returns the body bytes. Non-success
// statuses become errors carrying a snippet of the body.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := text.Truncate(text.NormalizeSpace(string(body)), 200)

		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, snippet)
	}

	return body, nil
}

// retryableFetch treats transport and status failures as retryable. A
// response that arrived but failed to decode is terminal.
func retryableFetch(err error) bool {
	return !errors.Is(err, loader.ErrInvalidJSON)
}
