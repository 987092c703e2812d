// Package app wires the loading, exporting, and rendering stages of the
// news pipeline behind the command-line entry points.
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/config"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/exporter"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/loader"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/logger"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/models"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/newsapi"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/presenter"
)

// Options controls one pipeline run.
type Options struct {
	OutputDir   string
	JSONName    string
	CSVName     string
	Quiet       bool
	FullContent bool
	Styles      presenter.Styles
}

// Run exports raw to JSON and CSV and, unless quiet, renders the articles
// to out. An export failure propagates before anything is displayed.
func Run(raw *models.RawResponse, opts Options, log *logger.Logger, out io.Writer) error {
	articles := raw.Articles()

	log.Info("processed response",
		"status", raw.Status(),
		"totalResults", raw.TotalResults(),
		"articles", len(articles),
	)

	exp, err := exporter.New(opts.OutputDir, log)
	if err != nil {
		return err
	}

	jsonPath, err := exp.WriteJSON(raw, opts.JSONName)
	if err != nil {
		return err
	}

	csvPath, err := exp.WriteCSV(articles, opts.CSVName)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		presenter.New(out, opts.FullContent, opts.Styles).Render(articles)

		fmt.Fprintf(out, "\n✅ Data saved to: %s\n", jsonPath)
		fmt.Fprintf(out, "✅ Data saved to: %s\n", csvPath)
	}

	return nil
}

// Explain maps an error to the message logged before exiting with a
// failure code. Every failure category keeps its own message so runs can
// be told apart from the log alone.
func Explain(err error) string {
	switch {
	case errors.Is(err, newsapi.ErrMissingAPIKey):
		return "missing API key: set " + config.EnvAPIKey
	case errors.Is(err, loader.ErrInvalidJSON):
		return "invalid JSON input"
	case errors.Is(err, fs.ErrNotExist):
		return "input file not found"
	case errors.Is(err, newsapi.ErrNetwork):
		return "network request failed after retries"
	default:
		return "unexpected error"
	}
}
