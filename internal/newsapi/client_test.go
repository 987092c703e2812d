package newsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/loader"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/logger"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/pkg/retry"

	"github.com/stretchr/testify/suite"
)

const okBody = `{"status":"ok","totalResults":2,"articles":[{"title":"A"},{"title":"B"}]}`

type ClientSuite struct {
	suite.Suite

	sleeps []time.Duration
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.sleeps = nil
}

// newClient builds a client against baseURL with the default fetch policy,
// recording backoff delays instead of sleeping.
func (s *ClientSuite) newClient(apiKey, baseURL string) *Client {
	return NewClient(ClientConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Retry: retry.Policy{
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
			Sleep: func(_ context.Context, d time.Duration) error {
				s.sleeps = append(s.sleeps, d)

				return nil
			},
		},
		Logger: logger.NewWithWriter(io.Discard, "error"),
	})
}

func (s *ClientSuite) TestEverything_Success() {
	requests := 0

	var gotPath string

	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, okBody)
	}))
	defer srv.Close()

	client := s.newClient("test-key", srv.URL)

	resp, err := client.Everything(context.Background(), Query{Keyword: "golang", Language: "en", PageSize: 20})
	s.Require().NoError(err)

	s.Equal(1, requests)
	s.Empty(s.sleeps)
	s.Equal("/everything", gotPath)

	s.Equal("golang", gotQuery.Get("q"))
	s.Equal("en", gotQuery.Get("language"))
	s.Equal("publishedAt", gotQuery.Get("sortBy"))
	s.Equal("20", gotQuery.Get("pageSize"))
	s.Equal("test-key", gotQuery.Get("apiKey"))

	s.Equal("ok", resp.Status())
	s.Equal(2, resp.TotalResults())
	s.Len(resp.Articles(), 2)
}

func (s *ClientSuite) TestEverything_RetriesThenSucceeds() {
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		if requests < 3 {
			http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)

			return
		}

		fmt.Fprint(w, okBody)
	}))
	defer srv.Close()

	client := s.newClient("test-key", srv.URL)

	resp, err := client.Everything(context.Background(), Query{Keyword: "golang", Language: "en", PageSize: 20})
	s.Require().NoError(err)

	s.Equal(3, requests)
	s.Equal([]time.Duration{500 * time.Millisecond, time.Second}, s.sleeps)
	s.Equal("ok", resp.Status())
}

func (s *ClientSuite) TestEverything_ExhaustedRetries() {
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		http.Error(w, "still down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := s.newClient("test-key", srv.URL)

	_, err := client.Everything(context.Background(), Query{Keyword: "golang", Language: "en", PageSize: 20})
	s.Require().Error(err)

	s.ErrorIs(err, ErrNetwork)
	s.ErrorIs(err, ErrUnexpectedStatus)
	s.Contains(err.Error(), "502")
	s.Contains(err.Error(), "still down")
	s.Equal(3, requests)
	s.Len(s.sleeps, 2)
}

func (s *ClientSuite) TestEverything_BadJSONNotRetried() {
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		fmt.Fprint(w, `{"status": "ok", "articles": [`)
	}))
	defer srv.Close()

	client := s.newClient("test-key", srv.URL)

	_, err := client.Everything(context.Background(), Query{Keyword: "golang", Language: "en", PageSize: 20})
	s.Require().Error(err)

	s.ErrorIs(err, loader.ErrInvalidJSON)
	s.NotErrorIs(err, ErrNetwork)
	s.Equal(1, requests)
	s.Empty(s.sleeps)
}

func (s *ClientSuite) TestEverything_MissingAPIKey() {
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		fmt.Fprint(w, okBody)
	}))
	defer srv.Close()

	client := s.newClient("", srv.URL)

	_, err := client.Everything(context.Background(), Query{Keyword: "golang", Language: "en", PageSize: 20})
	s.Require().Error(err)

	s.ErrorIs(err, ErrMissingAPIKey)
	s.Equal(0, requests)
}

func (s *ClientSuite) TestNewClient_Defaults() {
	client := NewClient(ClientConfig{APIKey: "k"})

	s.Equal(defaultBaseURL, client.baseURL)
	s.Equal(defaultTimeout, client.client.Timeout)
	s.Equal(int64(defaultMaxBody), client.maxBody)
}

func (s *ClientSuite) TestNewClient_TrimsTrailingSlash() {
	client := NewClient(ClientConfig{APIKey: "k", BaseURL: "https://example.org/v2/"})

	s.Equal("https://example.org/v2", client.baseURL)
}
