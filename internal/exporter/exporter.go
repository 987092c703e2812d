// Package exporter writes response documents and article records to disk.
package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/logger"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/models"
)

// csvHeader is the fixed column set of every CSV export, in this order.
var csvHeader = []string{
	"title",
	"source",
	"source_id",
	"author",
	"description",
	"url",
	"url_to_image",
	"publishedAt",
	"content",
}

// Exporter writes the output files of one run. The timestamp used in
// default filenames is captured once at construction, so every file of a
// run carries the same stamp.
type Exporter struct {
	dir   string
	stamp string
	log   *logger.Logger
}

// New creates an exporter rooted at dir, creating the directory when
// needed. An empty dir means the current directory.
func New(dir string, log *logger.Logger) (*Exporter, error) {
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return &Exporter{
		dir:   dir,
		stamp: time.Now().Format("20060102_150405"),
		log:   log,
	}, nil
}

// Stamp returns the run timestamp used in default filenames.
func (e *Exporter) Stamp() string {
	return e.stamp
}

// WriteJSON saves the response document under name, defaulting to
// news_data_<stamp>.json. The document bytes are re-indented but otherwise
// written exactly as received, so unknown fields, key order, and non-ASCII
// text survive untouched.
func (e *Exporter) WriteJSON(raw *models.RawResponse, name string) (string, error) {
	path := e.resolvePath(name, ".json")

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw.Raw), "", "  "); err != nil {
		return "", fmt.Errorf("failed to format JSON for %s: %w", path, err)
	}

	buf.WriteByte('\n')

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file %s: %w", path, err)
	}

	e.log.Info("saved JSON export", "path", path)

	return path, nil
}

// WriteCSV saves the article records under name, defaulting to
// news_data_<stamp>.csv. The header row is always written, even with no
// articles, so downstream consumers see a stable schema.
func (e *Exporter) WriteCSV(articles []models.Article, name string) (string, error) {
	path := e.resolvePath(name, ".csv")

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, article := range articles {
		row := []string{
			article.Title,
			article.SourceName,
			orEmpty(article.SourceID),
			orEmpty(article.Author),
			orEmpty(article.Description),
			article.URL,
			orEmpty(article.ImageURL),
			article.PublishedAt,
			orEmpty(article.Content),
		}

		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV file %s: %w", path, err)
	}

	if len(articles) == 0 {
		e.log.Warn("no articles to export, CSV contains header only", "path", path)
	}

	e.log.Info("saved CSV export", "path", path, "rows", len(articles))

	return path, nil
}

// resolvePath turns a user-provided name into a full path. An empty name
// selects the stamped default, a name without extension gets ext appended,
// and a name with any extension is used as given.
func (e *Exporter) resolvePath(name, ext string) string {
	if name == "" {
		name = "news_data_" + e.stamp + ext
	} else if filepath.Ext(name) == "" {
		name += ext
	}

	return filepath.Join(e.dir, name)
}

func orEmpty(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
