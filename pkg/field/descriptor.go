package field

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SelectionType controls which input kind a choice field uses.
type SelectionType string

const (
	SelectionSingle SelectionType = "single"
	SelectionMulti  SelectionType = "multi"
)

// Valid reports whether the value is one of the recognised selection types.
// Comparison is exact; unrecognised values leave input kinds untouched.
func (s SelectionType) Valid() bool {
	return s == SelectionSingle || s == SelectionMulti
}

// InputType maps the selection type to the HTML input type it implies. The
// boolean is false for unrecognised values.
func (s SelectionType) InputType() (string, bool) {
	switch s {
	case SelectionSingle:
		return "radio", true
	case SelectionMulti:
		return "checkbox", true
	default:
		return "", false
	}
}

// Descriptor is the field JSON a host pipeline hands to field decorators.
// EnumNames and Enum are index-aligned: EnumNames carries image paths and Enum
// the matching alt texts. Alignment is not validated.
type Descriptor struct {
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Label      string     `json:"label,omitempty" yaml:"label,omitempty"`
	FieldType  string     `json:"fieldType,omitempty" yaml:"fieldType,omitempty"`
	EnumNames  Values     `json:"enumNames,omitempty" yaml:"enumNames,omitempty"`
	Enum       Values     `json:"enum,omitempty" yaml:"enum,omitempty"`
	Properties Properties `json:"properties" yaml:"properties"`
}

// ImagePath returns enumNames[idx]; ok is false when idx is out of range.
func (d Descriptor) ImagePath(idx int) (string, bool) {
	return d.EnumNames.At(idx)
}

// AltText returns enum[idx]; ok is false when idx is out of range.
func (d Descriptor) AltText(idx int) (string, bool) {
	return d.Enum.At(idx)
}

// SelectionType is shorthand for Properties.SelectionType.
func (d Descriptor) SelectionType() SelectionType {
	return d.Properties.SelectionType
}

// Properties holds the descriptor's custom properties. SelectionType is lifted
// out; every other key is preserved in Extra.
type Properties struct {
	SelectionType SelectionType  `json:"selectionType,omitempty" yaml:"selectionType,omitempty"`
	Extra         map[string]any `json:"-" yaml:"-"`
}

const selectionTypeKey = "selectionType"

// UnmarshalJSON splits selectionType from the remaining properties.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.fromMap(raw)
	return nil
}

// MarshalJSON merges Extra back alongside selectionType.
func (p Properties) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toMap())
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML descriptors.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	p.fromMap(raw)
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (p Properties) MarshalYAML() (any, error) {
	return p.toMap(), nil
}

func (p *Properties) fromMap(raw map[string]any) {
	p.SelectionType = ""
	p.Extra = nil
	for key, value := range raw {
		if key == selectionTypeKey {
			if value != nil {
				p.SelectionType = SelectionType(coerce(value))
			}
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any, len(raw))
		}
		p.Extra[key] = value
	}
}

func (p Properties) toMap() map[string]any {
	out := make(map[string]any, len(p.Extra)+1)
	for key, value := range p.Extra {
		out[key] = value
	}
	if p.SelectionType != "" {
		out[selectionTypeKey] = string(p.SelectionType)
	}
	return out
}

// Values is a list of enum entries coerced to strings. Non-string JSON values
// are accepted and stringified; null becomes an empty string.
type Values []string

// At returns the entry at idx.
func (v Values) At(idx int) (string, bool) {
	if idx < 0 || idx >= len(v) {
		return "", false
	}
	return v[idx], true
}

// UnmarshalJSON accepts arrays of arbitrary scalars.
func (v *Values) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = coerceAll(raw)
	return nil
}

// UnmarshalYAML accepts sequences of arbitrary scalars.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	var raw []any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*v = coerceAll(raw)
	return nil
}

func coerceAll(raw []any) Values {
	if raw == nil {
		return nil
	}
	out := make(Values, len(raw))
	for idx, value := range raw {
		out[idx] = coerce(value)
	}
	return out
}

func coerce(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprint(typed)
	}
}
