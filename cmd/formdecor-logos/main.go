package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/goliatone/go-formdecor/internal/config"
	"github.com/goliatone/go-formdecor/pkg/teams"
	"github.com/goliatone/go-formdecor/pkg/teams/logos"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	failed, err := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("Failed to download logos: %v", err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) (int, error) {
	fs := flag.NewFlagSet("formdecor-logos", flag.ContinueOnError)
	fs.SetOutput(stderr)

	baseURL := cfg.Logos.BaseURL
	if baseURL == "" {
		baseURL = logos.DefaultBaseURL
	}
	out := fs.String("out", cfg.Logos.Dir, "output directory")
	base := fs.String("base-url", baseURL, "logo host base URL")
	delay := fs.Duration("delay", cfg.Logos.Delay, "pause between requests")
	timeout := fs.Duration("timeout", cfg.HTTPTimeout, "per-request timeout")
	catalog := fs.String("catalog", "nfl", "team catalog to download")
	verbose := fs.Bool("verbose", cfg.Verbose, "log each download")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}

	slugs, ok := teams.Catalog(*catalog)
	if !ok {
		return 0, fmt.Errorf("unknown catalog %q", *catalog)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	downloader, err := logos.New(
		logos.WithBaseURL(*base),
		logos.WithDir(*out),
		logos.WithDelay(*delay),
		logos.WithTimeout(*timeout),
		logos.WithLogger(logger),
	)
	if err != nil {
		return 0, err
	}

	summary, err := downloader.Download(ctx, slugs)
	printSummary(stdout, summary, slugs)
	if err != nil {
		return len(summary.Failed), err
	}
	return len(summary.Failed), nil
}

func printSummary(w io.Writer, summary logos.Summary, slugs []string) {
	for _, slug := range summary.FailedSlugs(slugs) {
		fmt.Fprintf(w, "failed %s: %v\n", teams.LogoFile(slug), summary.Failed[slug])
	}
	fmt.Fprintf(w, "Succeeded: %d\n", len(summary.Succeeded))
	fmt.Fprintf(w, "Failed: %d\n", len(summary.Failed))
	fmt.Fprintf(w, "Logos saved to: %s\n", summary.Dir)
}
