package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	formdecor "github.com/goliatone/go-formdecor"
	"github.com/goliatone/go-formdecor/pkg/field"
)

type violation struct {
	file  string
	issue field.Issue
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-warnings] [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint field descriptor files (JSON/YAML, single or name-keyed sets).\n")
		flag.PrintDefaults()
	}
	strict := flag.Bool("warnings", false, "treat warnings as failures")
	flag.Parse()

	os.Exit(run(context.Background(), flag.Args(), *strict, os.Stderr))
}

func run(ctx context.Context, paths []string, strict bool, stderr io.Writer) int {
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "no descriptor paths given")
		return 2
	}

	loader := formdecor.NewLoader()

	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(ctx, loader, path)
		if err != nil {
			fmt.Fprintf(stderr, "lint %s: %v\n", path, err)
			return 1
		}
		violations = append(violations, linted...)
	}

	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			return violations[i].issue.Location < violations[j].issue.Location
		}
		return violations[i].file < violations[j].file
	})

	failed := false
	for _, v := range violations {
		fmt.Fprintf(stderr, "%s: %s\n", v.file, v.issue)
		if v.issue.Severity == field.SeverityError || strict {
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

func lintFile(ctx context.Context, loader field.Loader, path string) ([]violation, error) {
	doc, err := loader.Load(ctx, field.SourceFromFile(path))
	if err != nil {
		return nil, err
	}

	var descriptors map[string]field.Descriptor
	single, err := doc.Descriptor()
	switch {
	case err == nil && (single.Name != "" || len(single.Enum) > 0):
		descriptors = map[string]field.Descriptor{"": single}
	default:
		set, setErr := doc.Descriptors()
		switch {
		case setErr == nil && len(set) > 0:
			descriptors = set
		case err == nil:
			descriptors = map[string]field.Descriptor{"": single}
		default:
			return nil, fmt.Errorf("decode descriptor: %w", err)
		}
	}

	keys := make([]string, 0, len(descriptors))
	for key := range descriptors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var result []violation
	for _, key := range keys {
		for _, issue := range field.Lint(descriptors[key]) {
			if key != "" {
				issue.Location = key + " > " + issue.Location
			}
			result = append(result, violation{file: path, issue: issue})
		}
	}
	return result, nil
}
