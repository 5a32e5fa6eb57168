/*
Package pens implements the point-pen protocol of the UFO object model.

A point pen receives glyph outlines as a flat sequence of path begin/end
events, raw points and component references. The object model both drives
the protocol (serializing a glyph to storage) and implements it (a glyph
reconstructs its contours from a reader, or receives an outline from an
external generation tool).

Besides the protocol itself, the package provides pens for common
consumers: a transforming filter pen and two bounding-box pens, one exact
(solving Bézier extrema) and one over control points only. The bounds
pens resolve component references against a caller-supplied glyph set,
since glyphs do not know the layer that owns them; reference cycles are
detected and reported rather than recursed into.
*/
package pens

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ufo.pens'
func tracer() tracing.Trace {
	return tracing.Select("ufo.pens")
}
