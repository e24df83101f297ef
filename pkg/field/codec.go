package field

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a descriptor encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension. Unknown extensions
// yield FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Decode parses a descriptor payload in the given format. FormatAuto sniffs
// the payload: a leading '{' selects JSON, anything else YAML.
func Decode(data []byte, format Format) (Descriptor, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Descriptor{}, errors.New("field: descriptor payload is empty")
	}
	if format == FormatAuto {
		format = FormatYAML
		if trimmed[0] == '{' {
			format = FormatJSON
		}
	}

	var out Descriptor
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return Descriptor{}, fmt.Errorf("field: decode json descriptor: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(trimmed, &out); err != nil {
			return Descriptor{}, fmt.Errorf("field: decode yaml descriptor: %w", err)
		}
	default:
		return Descriptor{}, fmt.Errorf("field: unsupported descriptor format %q", format)
	}
	return out, nil
}

// DecodeSet parses a JSON or YAML object mapping field names to descriptors.
// Descriptors without a name inherit their key.
func DecodeSet(data []byte, format Format) (map[string]Descriptor, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("field: descriptor set payload is empty")
	}
	if format == FormatAuto {
		format = FormatYAML
		if trimmed[0] == '{' {
			format = FormatJSON
		}
	}

	var out map[string]Descriptor
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(trimmed, &out)
	case FormatYAML:
		err = yaml.Unmarshal(trimmed, &out)
	default:
		return nil, fmt.Errorf("field: unsupported descriptor format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("field: decode descriptor set: %w", err)
	}
	for key, desc := range out {
		if strings.TrimSpace(desc.Name) == "" {
			desc.Name = key
			out[key] = desc
		}
	}
	return out, nil
}
