// Command imagine is an MCP server exposing one tool, generate_image,
// backed by the Google Gemini API. The protocol runs over stdin/stdout;
// an optional HTTP server exposes generated images under /images.
//
// Usage:
//
//	GEMINI_API_KEY=gk-... imagine [flags]
//
// Flags:
//
//	-config string      Path to YAML config file
//	-api-key string     Gemini API key (overrides GEMINI_API_KEY)
//	-model string       Model ID (default: provider default)
//	-output-dir string  Directory for generated images (default: under os temp dir)
//	-http string        HTTP artifact server address, e.g. :8080 (empty disables)
//	-timeout-ms int     Provider round-trip timeout in milliseconds
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/imagine/config"
	"github.com/fwojciec/imagine/gemini"
	"github.com/fwojciec/imagine/mcp"
	"github.com/fwojciec/imagine/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "imagine: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags.
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		apiKey     = flag.String("api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
		model      = flag.String("model", "", "Model ID (provider-specific)")
		outputDir  = flag.String("output-dir", "", "Directory for generated images")
		httpListen = flag.String("http", "", "HTTP artifact server address, e.g. :8080 (empty disables)")
		timeoutMs  = flag.Int("timeout-ms", 0, "Provider round-trip timeout in milliseconds")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Resolve configuration. Env vars are read here and passed as values.
	fileCfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	flagCfg := config.Config{
		APIKey:     *apiKey,
		Model:      *model,
		OutputDir:  *outputDir,
		HTTPListen: *httpListen,
		TimeoutMs:  *timeoutMs,
	}
	cfg, err := config.Resolve(fileCfg, flagCfg, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return err
	}

	// Stdout carries the protocol; logs go to stderr.
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := []gemini.Option{gemini.WithLogger(logger)}
	if cfg.Model != "" {
		opts = append(opts, gemini.WithModel(cfg.Model))
	}
	if cfg.OutputDir != "" {
		opts = append(opts, gemini.WithOutputDir(cfg.OutputDir))
	}
	if cfg.TimeoutMs > 0 {
		opts = append(opts, gemini.WithTimeout(time.Duration(cfg.TimeoutMs)*time.Millisecond))
	}
	client, err := gemini.New(ctx, cfg.APIKey, opts...)
	if err != nil {
		return err
	}
	logger.Info("ready",
		zap.String("output_dir", client.OutputDir()),
		zap.String("http", cfg.HTTPListen))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Stdin EOF means the host is gone; take the HTTP server down too.
		defer stop()
		return mcp.New(client, mcp.WithLogger(logger)).Run(ctx)
	})
	if cfg.HTTPListen != "" {
		g.Go(func() error {
			return web.New(client, web.WithLogger(logger)).Run(ctx, cfg.HTTPListen)
		})
	}
	return g.Wait()
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
