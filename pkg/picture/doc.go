// Package picture builds responsive <picture> elements for image paths served
// by an optimizing image service that understands width, format, and optimize
// query parameters.
package picture
