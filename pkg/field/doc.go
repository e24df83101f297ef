// Package field describes the field JSON that host pipelines pass to field
// decorators. A Descriptor carries two index-aligned enum lists (EnumNames for
// image paths, Enum for alt texts) and a properties bag whose selectionType
// switches choice inputs between radio and checkbox.
//
// Descriptors decode from JSON or YAML, or from a component schema of an
// OpenAPI 3 document (enum, x-enumNames, x-formgen-selectionType). Loader
// contracts cover files, fs.FS entries, and HTTP; the implementation lives in
// internal/loader and is exposed through the root package.
package field
