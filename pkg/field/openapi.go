package field

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrSchemaNotFound is returned when the requested component schema is absent.
var ErrSchemaNotFound = errors.New("field: schema not found")

const (
	extensionEnumNames     = "x-enumNames"
	extensionSelectionType = "x-formgen-selectionType"
)

// FromOpenAPI builds a descriptor from components.schemas[schemaName] of an
// OpenAPI 3 document. enum maps to Enum, x-enumNames to EnumNames and
// x-formgen-selectionType to the selection type. Array schemas fall back to
// their item enum and default to multi selection.
func FromOpenAPI(ctx context.Context, data []byte, schemaName string) (Descriptor, error) {
	name := strings.TrimSpace(schemaName)
	if name == "" {
		return Descriptor{}, errors.New("field: schema name is required")
	}
	if err := ctx.Err(); err != nil {
		return Descriptor{}, err
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return Descriptor{}, fmt.Errorf("field: load openapi document: %w", err)
	}
	if doc.Components == nil {
		return Descriptor{}, fmt.Errorf("%w: %q (document has no components)", ErrSchemaNotFound, name)
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	return descriptorFromSchema(name, ref.Value), nil
}

func descriptorFromSchema(name string, schema *openapi3.Schema) Descriptor {
	desc := Descriptor{
		Name:  name,
		Label: schema.Title,
		Enum:  coerceAll(schema.Enum),
	}

	source := schema
	if len(desc.Enum) == 0 && schema.Items != nil && schema.Items.Value != nil {
		source = schema.Items.Value
		desc.Enum = coerceAll(source.Enum)
		desc.Properties.SelectionType = SelectionMulti
	}

	if names, ok := extensionList(schema.Extensions, extensionEnumNames); ok {
		desc.EnumNames = names
	} else if names, ok := extensionList(source.Extensions, extensionEnumNames); ok {
		desc.EnumNames = names
	}
	if raw, ok := schema.Extensions[extensionSelectionType]; ok && raw != nil {
		desc.Properties.SelectionType = SelectionType(coerce(raw))
	}
	return desc
}

func extensionList(extensions map[string]any, key string) (Values, bool) {
	raw, ok := extensions[key]
	if !ok {
		return nil, false
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	return coerceAll(list), true
}
