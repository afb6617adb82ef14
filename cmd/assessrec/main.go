// Copyright 2025 Hirewise Labs
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
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hirewise/assessrec"
	"github.com/hirewise/assessrec/ai"
	"github.com/hirewise/assessrec/ai/openai"
	"github.com/hirewise/assessrec/catalog"
	"github.com/hirewise/assessrec/httpapi"
	"github.com/hirewise/assessrec/index"
	"github.com/hirewise/assessrec/indexer"
	"github.com/hirewise/assessrec/recommend"
	"github.com/hirewise/assessrec/store/badger"
)

func main() {
	app := &cli.App{
		Name:  "assessrec",
		Usage: "Assessment recommendation service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Build the catalog store and vector index from the scraped CSV",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "Path to the scraped assessment catalog CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB catalog directory",
						Value:   "./data/catalog",
					},
					&cli.StringFlag{
						Name:  "index",
						Usage: "Output path for the vector index file",
						Value: "./data/catalog.fvix",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to embed per request",
						Value: 32,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent embedding workers",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve recommendations over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address (overrides ASSESSREC_ADDR)",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB catalog directory (overrides ASSESSREC_DB_PATH)",
					},
					&cli.StringFlag{
						Name:  "index",
						Usage: "Path to the vector index file (overrides ASSESSREC_INDEX_PATH)",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
					},
					&cli.StringFlag{
						Name:  "parser-host",
						Usage: "Intent parser service host URL",
					},
					&cli.StringFlag{
						Name:  "parser-model",
						Usage: "Intent parser model name",
					},
				},
			},
			{
				Name:      "query",
				Usage:     "Run a one-shot structured query against the catalog",
				ArgsUsage: "[free-form query text]",
				Action:    queryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB catalog directory",
						Value:   "./data/catalog",
					},
					&cli.StringFlag{
						Name:  "index",
						Usage: "Path to the vector index file",
						Value: "./data/catalog.fvix",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "skills",
						Usage: "Comma-separated required skills",
					},
					&cli.StringFlag{
						Name:  "traits",
						Usage: "Comma-separated role traits",
					},
					&cli.IntFlag{
						Name:  "duration",
						Usage: "Maximum assessment length in minutes (0 = no limit)",
					},
					&cli.StringFlag{
						Name:  "remote",
						Usage: "Remote testing requirement: yes, no, or empty for no constraint",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Print each pipeline stage to stderr",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	file, err := os.Open(c.String("csv"))
	if err != nil {
		return fmt.Errorf("failed to open catalog CSV: %w", err)
	}
	defer file.Close()

	records, err := indexer.ReadCatalogCSV(file)
	if err != nil {
		return fmt.Errorf("failed to parse catalog CSV: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Read %d catalog records\n", len(records))

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	cat, err := badger.NewCatalog(backend)
	if err != nil {
		return fmt.Errorf("failed to create catalog store: %w", err)
	}
	defer cat.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	opts := []indexer.Option{indexer.WithBatchSize(c.Int("batch-size"))}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, indexer.WithPoolSize(workers))
	}

	pipeline, err := indexer.NewPipeline(cat, provider, opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	idx, err := pipeline.Build(ctx, records)
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	indexPath := c.String("index")
	if err := index.WriteFile(idx, indexPath); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d records (dimension %d) to %s\n",
		idx.Len(), idx.Dim(), indexPath)
	return nil
}

func serveCommand(c *cli.Context) error {
	cfg, err := httpapi.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}
	applyServeFlags(cfg, c)

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(cfg.EmbeddingHost),
		ai.WithEmbeddingModel(cfg.EmbeddingModel),
		ai.WithParserHost(cfg.ParserHost),
		ai.WithParserModel(cfg.ParserModel),
		ai.WithEmbedTimeout(cfg.EmbedTimeout),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	sys, err := assessrec.OpenSystem(cfg.DBPath, cfg.IndexPath, assessrec.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open system: %w", err)
	}
	defer sys.Close()

	rec, err := sys.NewRecommender(recommend.WithEmbedTimeout(cfg.EmbedTimeout))
	if err != nil {
		return fmt.Errorf("failed to create recommender: %w", err)
	}

	server, err := httpapi.NewServer(rec, sys.Provider().QueryParser())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return server.Run(cfg.Addr)
}

// applyServeFlags overrides env-derived config with any flags that were set.
func applyServeFlags(cfg *httpapi.Config, c *cli.Context) {
	if v := c.String("addr"); v != "" {
		cfg.Addr = v
	}
	if v := c.String("db"); v != "" {
		cfg.DBPath = v
	}
	if v := c.String("index"); v != "" {
		cfg.IndexPath = v
	}
	if v := c.String("embedding-host"); v != "" {
		cfg.EmbeddingHost = v
	}
	if v := c.String("embedding-model"); v != "" {
		cfg.EmbeddingModel = v
	}
	if v := c.String("parser-host"); v != "" {
		cfg.ParserHost = v
	}
	if v := c.String("parser-model"); v != "" {
		cfg.ParserModel = v
	}
}

func queryCommand(c *cli.Context) error {
	ctx := context.Background()

	query, err := buildQueryFromFlags(
		c.String("skills"),
		c.String("traits"),
		c.Int("duration"),
		c.String("remote"),
	)
	if err != nil {
		return err
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	sys, err := assessrec.OpenSystem(c.String("db"), c.String("index"), assessrec.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open system: %w", err)
	}
	defer sys.Close()

	rec, err := sys.NewRecommender()
	if err != nil {
		return fmt.Errorf("failed to create recommender: %w", err)
	}

	var results []catalog.Recommendation
	if c.Bool("verbose") {
		results, err = rec.RecommendWithMonitor(ctx, query, &traceMonitor{out: os.Stderr})
	} else {
		results, err = rec.Recommend(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	fmt.Printf("Found %d recommendations\n", len(results))
	for i, r := range results {
		fmt.Printf("%d: %s [%s] duration=%s remote=%s adaptive=%s\n",
			i+1, r.AssessmentName, r.TestType, r.Duration, r.Remote, r.Adaptive)
		if r.URL != "" {
			fmt.Printf("   %s\n", r.URL)
		}
	}
	return nil
}

// buildQueryFromFlags turns CLI flag values into a structured query.
func buildQueryFromFlags(skills, traits string, duration int, remote string) (catalog.StructuredQuery, error) {
	query := catalog.StructuredQuery{
		Skills: splitTerms(skills),
		Traits: splitTerms(traits),
	}
	if duration > 0 {
		query.DurationLimit = &duration
	}

	switch strings.ToLower(strings.TrimSpace(remote)) {
	case "":
		// no constraint
	case "yes", "true":
		v := true
		query.RemoteRequired = &v
	case "no", "false":
		v := false
		query.RemoteRequired = &v
	default:
		return catalog.StructuredQuery{}, fmt.Errorf("invalid remote value %q: must be yes, no, or empty", remote)
	}

	return query, nil
}

// splitTerms splits a comma-separated flag value into trimmed terms.
func splitTerms(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// traceMonitor prints each pipeline stage, used by the query command's
// verbose mode.
type traceMonitor struct {
	out io.Writer
}

var _ recommend.Monitor = (*traceMonitor)(nil)

func (m *traceMonitor) Start(query catalog.StructuredQuery) {
	fmt.Fprintf(m.out, "query: skills=%v traits=%v\n", query.Skills, query.Traits)
}

func (m *traceMonitor) AfterQueryText(text string) {
	fmt.Fprintf(m.out, "query text: %q\n", text)
}

func (m *traceMonitor) AfterRetrieval(matches []index.Match) {
	fmt.Fprintf(m.out, "retrieved %d candidates\n", len(matches))
}

func (m *traceMonitor) ConstraintRejected(record *catalog.CatalogRecord) {
	fmt.Fprintf(m.out, "rejected: %s\n", record.Name)
}

func (m *traceMonitor) DuplicateSuppressed(record *catalog.CatalogRecord, acceptedName string) {
	fmt.Fprintf(m.out, "suppressed: %s (duplicate of %s)\n", record.Name, acceptedName)
}

func (m *traceMonitor) Accepted(record *catalog.CatalogRecord, distance float32) {
	fmt.Fprintf(m.out, "accepted: %s (distance %.4f)\n", record.Name, distance)
}

func (m *traceMonitor) Finish(results []catalog.Recommendation) {
	fmt.Fprintf(m.out, "finished with %d recommendations\n", len(results))
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
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
