/*
Package ufolib2 is a programmatic object model for UFO 3 font sources.

A Font is an object graph of layers, glyphs, contours, kerning, font
info and arbitrary attached data. Fonts open lazily by default: opening
a package reads only the small top-level documents and the tables of
contents, while glyphs, data files and images are parsed on first
access. Saving writes a complete fresh package next to the target and
swaps it into place atomically.

	font, err := ufolib2.Open("MyFont.ufo")
	if err != nil { ... }
	defer font.Close()
	glyph, err := font.Glyph("A")

The object types live in package objects, the geometry helpers in geom,
the point-pen protocol in pens and the on-disk format in ufoio. This
package ties them together and re-exports the object types under their
familiar names.

Tracing goes to the "ufo.font" tracer; see the schuko module for how to
route it.
*/
package ufolib2

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/fonttools/ufoLib2/objects"
	"github.com/fonttools/ufoLib2/ufoio"
)

// tracer traces with key 'ufo.font'.
func tracer() tracing.Trace {
	return tracing.Select("ufo.font")
}

// The object model types, re-exported for clients of this package.
type (
	Font       = objects.Font
	LayerSet   = objects.LayerSet
	Layer      = objects.Layer
	Glyph      = objects.Glyph
	Contour    = objects.Contour
	Point      = objects.Point
	Component  = objects.Component
	Anchor     = objects.Anchor
	Guideline  = objects.Guideline
	Image      = objects.Image
	Info       = objects.Info
	Features   = objects.Features
	Groups     = objects.Groups
	Kerning    = objects.Kerning
	KerningPair = objects.KerningPair
	Lib        = objects.Lib
	Number     = objects.Number
	DataSet    = objects.DataSet
	ImageSet   = objects.ImageSet
)

// config collects the knobs of Open and Save.
type config struct {
	lazy      bool
	validate  bool
	overwrite bool
}

// Option configures Open or Save.
type Option func(*config)

// WithLazy controls lazy loading on Open. Lazy is the default; pass
// WithLazy(false) to read the whole package up front and release the
// file handles immediately.
func WithLazy(lazy bool) Option {
	return func(c *config) { c.lazy = lazy }
}

// WithValidate controls package validation on Open. Validation is the
// default; pass WithValidate(false) to open packages with a missing or
// foreign metainfo.plist.
func WithValidate(validate bool) Option {
	return func(c *config) { c.validate = validate }
}

// WithOverwrite controls whether Save may replace an existing package.
// Overwriting is the default; pass WithOverwrite(false) to fail instead.
func WithOverwrite(overwrite bool) Option {
	return func(c *config) { c.overwrite = overwrite }
}

// New creates an empty in-memory font with a single default layer.
func New() *Font {
	return objects.NewFont()
}

// Open reads the UFO package at path.
func Open(path string, opts ...Option) (*Font, error) {
	cfg := config{lazy: true, validate: true, overwrite: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	reader, err := ufoio.OpenReader(path, cfg.validate)
	if err != nil {
		return nil, err
	}
	font, err := objects.ReadFont(reader, cfg.lazy)
	if err != nil {
		reader.Close()
		return nil, err
	}
	font.SetPath(path)
	return font, nil
}

// Save writes the font as a UFO package to path. The package is staged
// in a temporary directory and swapped into place on success, so the
// previous package survives a failed save. Saving over the package a
// lazy font was opened from is fine: pending parts are read from the
// old package while the new one is being staged, and the font is fully
// materialized afterwards.
func Save(font *Font, path string, opts ...Option) error {
	cfg := config{lazy: true, validate: true, overwrite: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	tracer().Infof("saving font to %q", path)
	writer, err := ufoio.NewWriter(path, cfg.overwrite)
	if err != nil {
		return err
	}
	if err := font.Write(writer); err != nil {
		writer.Discard()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	font.SetPath(path)
	return nil
}
