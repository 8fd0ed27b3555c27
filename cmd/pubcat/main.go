// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/pubcat"
	"github.com/poiesic/pubcat/ai"
	"github.com/poiesic/pubcat/ai/mock"
	"github.com/poiesic/pubcat/config"
	"github.com/poiesic/pubcat/core"
	"github.com/poiesic/pubcat/summary"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "pubcat",
		Usage:     "Search a publication catalog and explain publications in plain language",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Catalog CSV: file path, file:// or http(s) URL",
				Value:   config.DefaultSource,
			},
			&cli.StringFlag{
				Name:  "cache-dir",
				Usage: "Directory for cached summaries (default: in-memory)",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Summary model name",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "OpenAI-compatible API base URL",
			},
			&cli.BoolFlag{
				Name:  "offline",
				Usage: "Use canned summaries instead of calling a model",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "List every publication whose title contains the query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     []cli.Flag{jsonFlag()},
			},
			{
				Name:      "suggest",
				Usage:     "Show the first suggestions for a query",
				ArgsUsage: "<query>",
				Action:    suggestCommand,
				Flags:     []cli.Flag{jsonFlag()},
			},
			{
				Name:   "graph",
				Usage:  "Print the knowledge graph as JSON",
				Action: graphCommand,
			},
			{
				Name:      "summarize",
				Usage:     "Explain the first publication matching the query",
				ArgsUsage: "<query>",
				Action:    summarizeCommand,
			},
			{
				Name:      "warm",
				Usage:     "Generate and cache summaries for every matching publication",
				ArgsUsage: "[query]",
				Action:    warmCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent summary requests",
					},
					&cli.Float64Flag{
						Name:  "rate",
						Usage: "Maximum summary requests per second (0 = unlimited)",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N publications",
					},
				},
			},
		},
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Print results as JSON",
	}
}

// loadConfig reads the configuration file, if any, and applies flags on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("source") {
		cfg.Source = c.String("source")
	}
	if c.IsSet("cache-dir") {
		cfg.Cache.Dir = c.String("cache-dir")
	}
	if c.IsSet("model") {
		cfg.AI.Model = c.String("model")
	}
	if c.IsSet("host") {
		cfg.AI.Host = c.String("host")
	}
	if c.IsSet("offline") {
		cfg.AI.Offline = c.Bool("offline")
	}
	if c.IsSet("workers") {
		cfg.Warm.Workers = c.Int("workers")
	}
	if c.IsSet("rate") {
		cfg.Warm.Rate = c.Float64("rate")
	}
	if c.IsSet("report-interval") {
		cfg.Warm.ReportInterval = c.Int("report-interval")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openLibrary builds a library from the configuration and loads its catalog.
func openLibrary(c *cli.Context, cfg *config.Config) (*pubcat.Library, error) {
	opts := []pubcat.Option{
		pubcat.WithCacheDir(cfg.Cache.Dir),
		pubcat.WithSummaryTTL(cfg.Cache.TTL),
		pubcat.WithLogger(slog.Default()),
	}
	if cfg.AI.Offline {
		opts = append(opts, pubcat.WithProvider(mock.NewMockProvider()))
	} else {
		opts = append(opts, pubcat.WithAIConfig(ai.NewConfig(cfg.AIOptions()...)))
	}

	lib, err := pubcat.NewLibrary(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}

	if err := lib.Load(c.Context, cfg.Source); err != nil {
		lib.Close()
		return nil, err
	}
	return lib, nil
}

func withLibrary(c *cli.Context, fn func(lib *pubcat.Library, cfg *config.Config) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	lib, err := openLibrary(c, cfg)
	if err != nil {
		return err
	}
	defer lib.Close()
	return fn(lib, cfg)
}

func query(c *cli.Context) string {
	return strings.Join(c.Args().Slice(), " ")
}

func searchCommand(c *cli.Context) error {
	return withLibrary(c, func(lib *pubcat.Library, _ *config.Config) error {
		return printPublications(c, lib.Filter(query(c)))
	})
}

func suggestCommand(c *cli.Context) error {
	return withLibrary(c, func(lib *pubcat.Library, _ *config.Config) error {
		return printPublications(c, lib.Suggest(query(c)))
	})
}

func graphCommand(c *cli.Context) error {
	return withLibrary(c, func(lib *pubcat.Library, _ *config.Config) error {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(lib.Graph())
	})
}

func summarizeCommand(c *cli.Context) error {
	q := query(c)
	if q == "" {
		return fmt.Errorf("a query is required")
	}
	return withLibrary(c, func(lib *pubcat.Library, _ *config.Config) error {
		matches := lib.Filter(q)
		if len(matches) == 0 {
			return fmt.Errorf("no publication matches %q", q)
		}
		pub := matches[0]
		fmt.Fprintf(c.App.Writer, "%s\n%s\n\n%s\n", pub.Title, pub.Link, lib.SummaryText(c.Context, pub))
		return nil
	})
}

func warmCommand(c *cli.Context) error {
	return withLibrary(c, func(lib *pubcat.Library, cfg *config.Config) error {
		pubs := lib.Filter(query(c))
		fmt.Fprintf(c.App.ErrWriter, "Source: %s\n", cfg.Source)
		fmt.Fprintf(c.App.ErrWriter, "Publications: %d\n", len(pubs))
		fmt.Fprintf(c.App.ErrWriter, "Workers: %d\n", cfg.Warm.Workers)
		fmt.Fprintln(c.App.ErrWriter)

		stats, err := lib.WarmSummaries(c.Context, pubs,
			summary.WithWorkers(cfg.Warm.Workers),
			summary.WithRate(cfg.Warm.Rate),
			summary.WithProgress(c.App.ErrWriter, cfg.Warm.ReportInterval),
		)
		fmt.Fprintf(c.App.Writer, "succeeded: %d, failed: %d, skipped: %d, elapsed: %s\n",
			stats.Succeeded, stats.Failed, stats.Skipped(), stats.Elapsed.Round(time.Millisecond))
		if err != nil {
			return fmt.Errorf("summary warming interrupted: %w", err)
		}
		return nil
	})
}

func printPublications(c *cli.Context, pubs []core.Publication) error {
	if c.Bool("json") {
		type row struct {
			Title string `json:"title"`
			Link  string `json:"link"`
		}
		rows := make([]row, len(pubs))
		for i, p := range pubs {
			rows[i] = row{Title: p.Title, Link: p.Link}
		}
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, p := range pubs {
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", p.Title, p.Link)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
