// Package orchestrator wires the loader → renderer → decorator pipeline →
// sanitizer sequence behind a single Generate call, with dependency
// injection friendly options for callers that need to swap a stage.
package orchestrator
