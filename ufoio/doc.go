/*
Package ufoio reads and writes UFO 3 packages on disk.

A UFO package is a directory of property lists, feature code and GLIF
files. This package implements the reader and writer interfaces declared
in package objects: Reader opens an existing package and serves its
parts on demand, Writer assembles a fresh package in a temporary
directory next to the target and swaps it into place on Close, so an
interrupted save never leaves a half-written font behind.

Layer and glyph names are mangled into file system safe names following
the conventions of the UFO specification, see UserNameToFileName.

Tracing goes to the "ufo.io" tracer.
*/
package ufoio

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ufo.io'.
func tracer() tracing.Trace {
	return tracing.Select("ufo.io")
}
