package objects

// This file declares the interfaces through which the object model talks
// to UFO package storage. Package ufoio implements them for UFOs on
// disk; tests substitute fakes.

// LayerEntry is one row of the font's layer table, in on-disk order.
type LayerEntry struct {
	Name    string
	Default bool
}

// GlyphSetReader reads the glyphs of one layer on demand. Implementations
// must tolerate ReadGlyph being called in any order and at any time
// between opening and closing the font.
type GlyphSetReader interface {
	// Contents returns the glyph names present in the set.
	Contents() ([]string, error)
	// ReadGlyph parses the named glyph.
	ReadGlyph(name string) (*Glyph, error)
	// ReadLayerInfo fills in the layer's color and lib.
	ReadLayerInfo(layer *Layer) error
}

// UFOReader provides access to the parts of a UFO package. Every method
// may be deferred until the corresponding object is first touched.
type UFOReader interface {
	ReadInfo(info *Info) error
	ReadFeatures() (string, error)
	ReadGroups() (Groups, error)
	ReadKerning() (Kerning, error)
	ReadLib() (Lib, error)
	LayerContents() ([]LayerEntry, error)
	GlyphSet(layerName string) (GlyphSetReader, error)
	ListData() ([]string, error)
	ListImages() ([]string, error)
	ReadData(fileName string) ([]byte, error)
	ReadImage(fileName string) ([]byte, error)
	Close() error
}

// GlyphSetWriter persists the glyphs of one layer.
type GlyphSetWriter interface {
	WriteGlyph(glyph *Glyph) error
	WriteLayerInfo(layer *Layer) error
	// WriteContents finalizes the set's table of contents. Call once,
	// after the last glyph.
	WriteContents() error
}

// UFOWriter persists a complete UFO package.
type UFOWriter interface {
	WriteInfo(info *Info) error
	WriteFeatures(text string) error
	WriteGroups(groups Groups) error
	WriteKerning(kerning Kerning) error
	WriteLib(lib Lib) error
	WriteLayerContents(entries []LayerEntry) error
	GlyphSet(layerName string, defaultLayer bool) (GlyphSetWriter, error)
	WriteData(fileName string, data []byte) error
	WriteImage(fileName string, data []byte) error
}
