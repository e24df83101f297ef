package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-formdecor/pkg/field"
	"github.com/goliatone/go-formdecor/pkg/teams"
)

func main() {
	var (
		catalog    = flag.String("catalog", "nfl", "team catalog to serialise")
		prefix     = flag.String("prefix", "/nfl_logos", "logo path prefix")
		selection  = flag.String("selection", "multi", "selection type (single|multi)")
		label      = flag.String("label", "Favourite teams", "field label")
		outputPath = flag.String("output", "examples/fixtures/nfl.json", "output path for the descriptor")
	)
	flag.Parse()

	slugs, ok := teams.Catalog(*catalog)
	if !ok {
		exitErr(fmt.Errorf("unknown catalog %q", *catalog))
	}
	sel := field.SelectionType(*selection)
	if !sel.Valid() {
		exitErr(fmt.Errorf("invalid selection %q", *selection))
	}

	desc := teams.Descriptor(slugs, teams.DescriptorOptions{
		Label:     *label,
		Prefix:    *prefix,
		Selection: sel,
	})
	if issues := field.Lint(desc); len(issues) > 0 {
		exitErr(fmt.Errorf("generated descriptor fails lint: %v", issues))
	}

	payload, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		exitErr(err)
	}
	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		exitErr(err)
	}
	if err := os.WriteFile(*outputPath, append(payload, '\n'), 0o644); err != nil {
		exitErr(err)
	}
	fmt.Printf("descriptor written to %s (%d teams)\n", *outputPath, len(slugs))
}

func exitErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
