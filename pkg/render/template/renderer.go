package template

import (
	"io"
)

// TemplateRenderer is the seam field renderers use to execute templates. The
// pongo subpackage provides the default pongo2-backed implementation.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
