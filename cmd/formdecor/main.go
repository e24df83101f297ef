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
	"strings"
	"time"

	formdecor "github.com/goliatone/go-formdecor"
	"github.com/goliatone/go-formdecor/internal/config"
	"github.com/goliatone/go-formdecor/internal/prompt"
	"github.com/goliatone/go-formdecor/pkg/field"
	"github.com/goliatone/go-formdecor/pkg/orchestrator"
	"github.com/goliatone/go-formdecor/pkg/picture"
	"github.com/goliatone/go-formdecor/pkg/teams"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr, nil); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("Failed to decorate form: %v", err)
	}
}

type options struct {
	descriptor  string
	openapi     string
	schema      string
	catalog     string
	field       string
	label       string
	formID      string
	selection   string
	baseURL     string
	logoPrefix  string
	eager       bool
	output      string
	interactive bool
	verbose     bool
	timeout     time.Duration
}

func parseFlags(cfg config.Config, args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("formdecor", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.descriptor, "descriptor", "", "field descriptor file (JSON/YAML) or URL")
	fs.StringVar(&opts.openapi, "openapi", "", "OpenAPI document path or URL holding the field schema")
	fs.StringVar(&opts.schema, "schema", "", "components.schemas entry to read when -openapi is set")
	fs.StringVar(&opts.catalog, "catalog", "", "built-in team catalog (nfl)")
	fs.StringVar(&opts.field, "field", cfg.Field, "field name for catalog descriptors")
	fs.StringVar(&opts.label, "label", cfg.Label, "field label override")
	fs.StringVar(&opts.formID, "form-id", cfg.FormID, "form id")
	fs.StringVar(&opts.selection, "selection", cfg.Selection, "selection type override (single|multi)")
	fs.StringVar(&opts.baseURL, "base-url", cfg.BaseURL, "base URL used to resolve relative image paths")
	fs.StringVar(&opts.logoPrefix, "logo-prefix", cfg.LogoPrefix, "path prefix for catalog logos")
	fs.BoolVar(&opts.eager, "eager", cfg.Eager, "load images eagerly")
	fs.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for settings left unset")
	fs.BoolVar(&opts.verbose, "verbose", cfg.Verbose, "log pipeline progress to stderr")
	fs.DurationVar(&opts.timeout, "timeout", cfg.HTTPTimeout, "timeout for remote descriptors")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	sources := 0
	for _, set := range []bool{opts.descriptor != "", opts.openapi != "", opts.catalog != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return options{}, errors.New("exactly one of -descriptor, -openapi, or -catalog is required")
	}
	if opts.openapi != "" && strings.TrimSpace(opts.schema) == "" {
		return options{}, errors.New("-schema is required with -openapi")
	}
	if sel := field.SelectionType(opts.selection); sel != "" && !sel.Valid() {
		return options{}, fmt.Errorf("invalid -selection %q (want single or multi)", opts.selection)
	}
	return opts, nil
}

// run is main without the process globals. driver may be nil, in which case
// interactive mode uses the terminal.
func run(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer, driver prompt.Driver) error {
	opts, err := parseFlags(cfg, args, stderr)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	loader := formdecor.NewLoader(field.WithHTTPFallback(opts.timeout))
	desc, err := resolveDescriptor(ctx, loader, opts)
	if err != nil {
		return err
	}
	if opts.label != "" {
		desc.Label = opts.label
	}
	if opts.selection != "" {
		desc.Properties.SelectionType = field.SelectionType(opts.selection)
	}

	formID := opts.formID
	if opts.interactive {
		if driver == nil {
			driver = prompt.NewSurveyDriver()
		}
		settings, err := prompt.Complete(ctx, driver, prompt.Settings{
			Selection: desc.SelectionType(),
			Label:     desc.Label,
			FormID:    formID,
		})
		if err != nil {
			return err
		}
		desc.Properties.SelectionType = settings.Selection
		desc.Label = settings.Label
		formID = settings.FormID
	}

	orch := orchestrator.New(
		orchestrator.WithLoader(loader),
		orchestrator.WithLogger(logger),
		orchestrator.WithPictureOptions(
			picture.WithBaseURL(opts.baseURL),
			picture.WithEager(opts.eager),
		),
	)
	out, err := orch.Generate(ctx, orchestrator.Request{
		Descriptor: &desc,
		FormID:     formID,
	})
	if err != nil {
		return err
	}
	for _, sheet := range out.Stylesheets {
		logger.Info("component stylesheet", "href", sheet)
	}

	if opts.output == "" {
		_, err := fmt.Fprintln(stdout, string(out.HTML))
		return err
	}

	if opts.interactive {
		if _, statErr := os.Stat(opts.output); statErr == nil {
			ok, err := prompt.ConfirmOverwrite(ctx, driver, opts.output)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("output exists; not overwritten")
			}
		}
	}
	if err := os.WriteFile(opts.output, out.HTML, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	_, err = fmt.Fprintf(stdout, "Form written to %s\n", opts.output)
	return err
}

func resolveDescriptor(ctx context.Context, loader field.Loader, opts options) (field.Descriptor, error) {
	switch {
	case opts.catalog != "":
		slugs, ok := teams.Catalog(opts.catalog)
		if !ok {
			return field.Descriptor{}, fmt.Errorf("unknown catalog %q", opts.catalog)
		}
		return teams.Descriptor(slugs, teams.DescriptorOptions{
			Name:   opts.field,
			Label:  opts.label,
			Prefix: opts.logoPrefix,
		}), nil

	case opts.openapi != "":
		doc, err := load(ctx, loader, opts.openapi)
		if err != nil {
			return field.Descriptor{}, err
		}
		return field.FromOpenAPI(ctx, doc.Raw(), opts.schema)

	default:
		doc, err := load(ctx, loader, opts.descriptor)
		if err != nil {
			return field.Descriptor{}, err
		}
		desc, err := doc.Descriptor()
		if err != nil {
			return field.Descriptor{}, err
		}
		return desc, nil
	}
}

func load(ctx context.Context, loader field.Loader, location string) (field.Document, error) {
	src, err := field.ParseSource(location)
	if err != nil {
		return field.Document{}, err
	}
	if src == nil {
		return field.Document{}, fmt.Errorf("invalid source: %q", location)
	}
	return loader.Load(ctx, src)
}
