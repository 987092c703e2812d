// Package main provides the fetcher command that queries the news API and
// runs the results through the export pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/app"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/config"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/logger"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/newsapi"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/presenter"

	"golang.org/x/term"
)

const defaultConfigPath = "configs/newsgenie.yaml"

func main() {
	// Long and short forms share one variable, so either spelling works.
	var (
		configFile  string
		outputDir   string
		jsonName    string
		csvName     string
		keyword     string
		language    string
		count       int
		quiet       bool
		fullContent bool
		debug       bool
		help        bool
	)

	flag.StringVar(&configFile, "config", "", "Path to YAML configuration file")
	flag.StringVar(&outputDir, "output-dir", "", "Directory for exported files")
	flag.StringVar(&outputDir, "o", "", "Directory for exported files (shorthand)")
	flag.StringVar(&jsonName, "json", "", "JSON output filename")
	flag.StringVar(&jsonName, "j", "", "JSON output filename (shorthand)")
	flag.StringVar(&csvName, "csv", "", "CSV output filename")
	flag.StringVar(&csvName, "s", "", "CSV output filename (shorthand)")
	flag.StringVar(&keyword, "keyword", "", "Search keyword")
	flag.StringVar(&keyword, "k", "", "Search keyword (shorthand)")
	flag.StringVar(&language, "language", "", "Article language code")
	flag.StringVar(&language, "l", "", "Article language code (shorthand)")
	flag.IntVar(&count, "count", 0, "Number of articles to request (1-100)")
	flag.IntVar(&count, "c", 0, "Number of articles to request (shorthand)")
	flag.BoolVar(&quiet, "quiet", false, "Suppress console display")
	flag.BoolVar(&quiet, "q", false, "Suppress console display (shorthand)")
	flag.BoolVar(&fullContent, "full-content", false, "Show full article content")
	flag.BoolVar(&fullContent, "f", false, "Show full article content (shorthand)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&debug, "d", false, "Enable debug logging (shorthand)")
	flag.BoolVar(&help, "help", false, "Show usage information")
	flag.Usage = printUsage
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	cfg.ApplyEnv()

	// Flags win over config file values.
	if debug {
		cfg.Logging.Level = "debug"
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	if jsonName != "" {
		cfg.Output.JSONFile = jsonName
	}

	if csvName != "" {
		cfg.Output.CSVFile = csvName
	}

	if keyword != "" {
		cfg.Fetch.Keyword = keyword
	}

	if language != "" {
		cfg.Fetch.Language = language
	}

	if count > 0 {
		cfg.Fetch.PageSize = count
	}

	log := logger.New(cfg.Logging.Level)
	log.Debug("configuration resolved", "config", cfg.String())

	if cfg.Fetch.Keyword == "" {
		fmt.Fprintln(os.Stderr, "❌ Please provide a search keyword with --keyword")
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	client := newsapi.NewClient(newsapi.ClientConfig{
		APIKey:       cfg.API.Key,
		BaseURL:      cfg.API.BaseURL,
		Timeout:      cfg.API.Timeout(),
		MaxBodyBytes: cfg.API.MaxBodyBytes(),
		Retry:        cfg.Retry.Policy(),
		Logger:       log,
	})

	log.Info("🔍 Fetching articles",
		"keyword", cfg.Fetch.Keyword,
		"language", cfg.Fetch.Language,
		"pageSize", cfg.Fetch.PageSize,
	)

	raw, err := client.Everything(context.Background(), newsapi.Query{
		Keyword:  cfg.Fetch.Keyword,
		Language: cfg.Fetch.Language,
		PageSize: cfg.Fetch.PageSize,
	})
	if err != nil {
		log.Error(app.Explain(err), "error", err)
		os.Exit(1)
	}

	opts := app.Options{
		OutputDir:   cfg.Output.Dir,
		JSONName:    cfg.Output.JSONFile,
		CSVName:     cfg.Output.CSVFile,
		Quiet:       quiet || cfg.Display.Quiet,
		FullContent: fullContent || cfg.Display.FullContent,
		Styles:      pickStyles(),
	}

	if err := app.Run(raw, opts, log, os.Stdout); err != nil {
		log.Error(app.Explain(err), "error", err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration: an explicit path must load, the
// default path loads when present, and otherwise the built-ins apply.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		return config.Load(defaultConfigPath)
	}

	return config.Default(), nil
}

// pickStyles enables colored output only when stdout is a terminal.
func pickStyles() presenter.Styles {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return presenter.DefaultStyles()
	}

	return presenter.PlainStyles()
}

func printUsage() {
	fmt.Println("Usage: ./bin/fetcher [OPTIONS]")
	fmt.Println()
	fmt.Println("Fetches articles from the news API and exports them to JSON and CSV.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  NEWS_API_KEY       API key (required; a .env file is read if present)")
	fmt.Println("  NEWS_API_BASE_URL  Override the API base URL")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/fetcher --keyword bitcoin")
	fmt.Println("  ./bin/fetcher -k \"climate change\" -l de -c 50")
	fmt.Println("  ./bin/fetcher -k tesla -o exports -j tesla.json -s tesla.csv -q")
}
