/*
Package objects implements the UFO version 3 object model.

The object graph mirrors the on-disk shape of a UFO package: a Font owns
an Info, feature code, a LayerSet of Layers holding Glyphs, a DataSet and
an ImageSet of binary files, and a free-form lib mapping. Glyphs in turn
own Contours of Points, Components, Anchors and Guidelines.

Two design rules govern the graph:

▪︎ No object stores a reference to its owner. A Component refers to its
base glyph by name and is resolved against a Layer the caller supplies;
an object-lib entry refers to its object by identifier string. This keeps
the graph a strict tree, which makes deep copying and serialization
trivial, at the price of an explicit context parameter on operations that
need one (e.g. Glyph.Bounds takes a Layer).

▪︎ Containers that are populated from a package reader load their children
lazily. A pending entry holds nothing but a locator into backing storage;
the first access materializes it in place. Unlazify forces the whole
subtree. Lazy state is an artifact of reading: objects built in memory,
and deep copies, are always fully materialized.

The model is not safe for concurrent use; materialization mutates shared
slots without locking. Callers that want to share a Font across
goroutines must unlazify it first and treat it as read-only.

Reading and writing of the actual package files is delegated to the
UFOReader/UFOWriter interfaces declared in this package and implemented
by package ufoio.
*/
package objects

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ufo.objects'
func tracer() tracing.Trace {
	return tracing.Select("ufo.objects")
}
