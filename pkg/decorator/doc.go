// Package decorator hosts field decorators: functions that progressively
// enhance server-rendered field markup in place. Decorators register under a
// component name together with the stylesheets and scripts they rely on; a
// Pipeline then walks rendered markup, finds wrappers tagged with
// data-component, and invokes the matching decorator with the field's
// descriptor, its parent element, and the form identifier.
package decorator
