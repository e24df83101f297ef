// Package teamselection decorates choice fields whose options are team logos.
//
// The decorator marks the field wrapper with the team-selection class, switches
// every input in the field to radio (selectionType "single") or checkbox
// (selectionType "multi"), and appends an optimized <picture> to each option
// wrapper. Pictures pair enumNames[i] (image path) with enum[i] (alt text) by
// the wrapper's position in document order. Descriptor lists are not checked
// against the wrapper count: every wrapper receives a picture, and wrappers
// past the end of the lists get one without an image source.
package teamselection
