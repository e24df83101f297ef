// Package template defines the template engine contract used by the field
// markup renderer. Implementations live in subpackages so callers can swap
// engines without touching render logic.
package template
