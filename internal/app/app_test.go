package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/loader"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/logger"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/newsapi"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/presenter"

	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "status": "ok",
  "totalResults": 2,
  "articles": [
    {
      "source": {"id": "wire", "name": "Wire"},
      "author": "Dana Cole",
      "title": "Board approves transit expansion",
      "description": "Two new lines were approved.",
      "url": "https://example.com/transit",
      "urlToImage": "https://example.com/transit.jpg",
      "publishedAt": "2025-01-02T08:30:00Z",
      "content": "The board voted on Tuesday… [+1840 chars]"
    },
    {
      "source": {"id": null, "name": "Local Desk"},
      "author": null,
      "title": "Rain expected through Friday",
      "description": null,
      "url": "https://example.com/weather",
      "urlToImage": null,
      "publishedAt": "2025-01-02T06:00:00Z",
      "content": null
    }
  ]
}`

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

func TestRun_WritesExportsAndRenders(t *testing.T) {
	raw, err := loader.FromString(sampleResponse)
	require.NoError(t, err)

	dir := t.TempDir()

	var out bytes.Buffer

	opts := Options{
		OutputDir: dir,
		JSONName:  "run.json",
		CSVName:   "run.csv",
		Styles:    presenter.PlainStyles(),
	}

	require.NoError(t, Run(raw, opts, testLogger(), &out))

	jsonData, err := os.ReadFile(filepath.Join(dir, "run.json"))
	require.NoError(t, err)
	require.Contains(t, string(jsonData), "Board approves transit expansion")

	csvData, err := os.ReadFile(filepath.Join(dir, "run.csv"))
	require.NoError(t, err)
	require.Contains(t, string(csvData), "title,source,source_id,author,description,url,url_to_image,publishedAt,content")
	require.Contains(t, string(csvData), "Rain expected through Friday")

	got := out.String()
	require.Contains(t, got, "News Articles Summary")
	require.Contains(t, got, "1. Board approves transit expansion")
	require.Contains(t, got, "✅ Data saved to: "+filepath.Join(dir, "run.json"))
	require.Contains(t, got, "✅ Data saved to: "+filepath.Join(dir, "run.csv"))
}

func TestRun_QuietSuppressesOutput(t *testing.T) {
	raw, err := loader.FromString(sampleResponse)
	require.NoError(t, err)

	dir := t.TempDir()

	var out bytes.Buffer

	opts := Options{
		OutputDir: dir,
		JSONName:  "quiet.json",
		CSVName:   "quiet.csv",
		Quiet:     true,
		Styles:    presenter.PlainStyles(),
	}

	require.NoError(t, Run(raw, opts, testLogger(), &out))
	require.Empty(t, out.String())

	_, err = os.Stat(filepath.Join(dir, "quiet.json"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "quiet.csv"))
	require.NoError(t, err)
}

func TestRun_EmptyArticles(t *testing.T) {
	raw, err := loader.FromString(`{"status": "ok", "totalResults": 0, "articles": []}`)
	require.NoError(t, err)

	dir := t.TempDir()

	var out bytes.Buffer

	opts := Options{
		OutputDir: dir,
		CSVName:   "empty.csv",
		JSONName:  "empty.json",
		Styles:    presenter.PlainStyles(),
	}

	require.NoError(t, Run(raw, opts, testLogger(), &out))
	require.Contains(t, out.String(), "No articles found.")

	csvData, err := os.ReadFile(filepath.Join(dir, "empty.csv"))
	require.NoError(t, err)
	require.Contains(t, string(csvData), "title,source,source_id")
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing api key", fmt.Errorf("fetch: %w", newsapi.ErrMissingAPIKey), "missing API key: set NEWS_API_KEY"},
		{"invalid json", fmt.Errorf("load: %w", loader.ErrInvalidJSON), "invalid JSON input"},
		{"file not found", fmt.Errorf("read: %w", fs.ErrNotExist), "input file not found"},
		{"network failure", fmt.Errorf("fetch: %w", newsapi.ErrNetwork), "network request failed after retries"},
		{"unexpected", errors.New("boom"), "unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Explain(tt.err); got != tt.want {
				t.Fatalf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
