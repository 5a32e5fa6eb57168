package ufoio

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/objects"
)

// File and directory names fixed by the UFO specification.
const (
	metaInfoFile      = "metainfo.plist"
	fontInfoFile      = "fontinfo.plist"
	libFile           = "lib.plist"
	groupsFile        = "groups.plist"
	kerningFile       = "kerning.plist"
	featuresFile      = "features.fea"
	layerContentsFile = "layercontents.plist"
	layerInfoFile     = "layerinfo.plist"
	contentsFile      = "contents.plist"
	dataDirName       = "data"
	imagesDirName     = "images"
	defaultGlyphsDir  = "glyphs"
)

// ufoFormatVersion is the only major format we read and write.
const ufoFormatVersion = 3

// metaInfo mirrors metainfo.plist.
type metaInfo struct {
	Creator       string `plist:"creator"`
	FormatVersion int    `plist:"formatVersion"`
}

// Reader serves the parts of a UFO package directory. It implements
// objects.UFOReader; all reads go straight to disk, so the directory
// must stay put while a lazy font holds on to the reader.
type Reader struct {
	path      string
	entries   []objects.LayerEntry
	layerDirs map[string]string
}

// OpenReader opens the UFO package directory at path. With validate
// set, metainfo.plist must identify a format 3 package; without it, a
// missing or foreign metainfo.plist is tolerated.
func OpenReader(path string, validate bool) (*Reader, error) {
	tracer().Infof("opening UFO package %q", path)
	if stat, err := os.Stat(path); err != nil || !stat.IsDir() {
		return nil, core.Error(core.EMISSING, "no UFO package at %q", path)
	}
	var meta metaInfo
	if err := readPlist(filepath.Join(path, metaInfoFile), &meta); err != nil {
		if validate || core.Code(err) != core.EMISSING {
			return nil, core.WrapError(err, core.EFORMAT, "%q is not a UFO package", path)
		}
	} else if validate && meta.FormatVersion != ufoFormatVersion {
		return nil, core.Error(core.EFORMAT, "unsupported UFO format version %d", meta.FormatVersion)
	}
	r := &Reader{path: path, layerDirs: map[string]string{}}
	var rows [][]string
	err := readPlist(filepath.Join(path, layerContentsFile), &rows)
	switch {
	case err == nil:
		for _, row := range rows {
			if len(row) != 2 {
				return nil, core.Error(core.EFORMAT, "malformed layer table in %q", path)
			}
			name, dir := row[0], row[1]
			r.entries = append(r.entries, objects.LayerEntry{
				Name:    name,
				Default: dir == defaultGlyphsDir,
			})
			r.layerDirs[name] = dir
		}
	case core.Code(err) == core.EMISSING:
		// Tolerate a bare package with just the default glyphs dir.
		if _, serr := os.Stat(filepath.Join(path, defaultGlyphsDir)); serr == nil {
			r.entries = []objects.LayerEntry{{Name: objects.DefaultLayerName, Default: true}}
			r.layerDirs[objects.DefaultLayerName] = defaultGlyphsDir
		}
	default:
		return nil, err
	}
	return r, nil
}

// Path returns the package directory.
func (r *Reader) Path() string { return r.path }

func (r *Reader) ReadInfo(info *objects.Info) error {
	err := readPlist(filepath.Join(r.path, fontInfoFile), info)
	if core.Code(err) == core.EMISSING {
		return nil
	}
	return err
}

func (r *Reader) ReadFeatures() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.path, featuresFile))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", core.WrapError(err, core.EINTERNAL, "cannot read feature file")
	}
	return string(data), nil
}

func (r *Reader) ReadGroups() (objects.Groups, error) {
	groups := objects.Groups{}
	err := readPlist(filepath.Join(r.path, groupsFile), &groups)
	if err != nil && core.Code(err) != core.EMISSING {
		return nil, err
	}
	return groups, nil
}

func (r *Reader) ReadKerning() (objects.Kerning, error) {
	raw := map[string]map[string]interface{}{}
	err := readPlist(filepath.Join(r.path, kerningFile), &raw)
	if err != nil && core.Code(err) != core.EMISSING {
		return nil, err
	}
	kerning := objects.Kerning{}
	for first, seconds := range raw {
		for second, value := range seconds {
			v, ok := toFloat(value)
			if !ok {
				return nil, core.Error(core.EPARSE, "non-numeric kerning value for (%s, %s)", first, second)
			}
			kerning.Set(first, second, v)
		}
	}
	return kerning, nil
}

func (r *Reader) ReadLib() (objects.Lib, error) {
	lib := map[string]interface{}{}
	err := readPlist(filepath.Join(r.path, libFile), &lib)
	if err != nil && core.Code(err) != core.EMISSING {
		return nil, err
	}
	return normalizeLib(objects.Lib(lib)), nil
}

func (r *Reader) LayerContents() ([]objects.LayerEntry, error) {
	return r.entries, nil
}

func (r *Reader) GlyphSet(layerName string) (objects.GlyphSetReader, error) {
	dir, ok := r.layerDirs[layerName]
	if !ok {
		return nil, core.Error(core.EMISSING, "no layer named %q in %q", layerName, r.path)
	}
	gs := &glyphSetReader{dir: filepath.Join(r.path, dir)}
	contents := map[string]string{}
	if err := readPlist(filepath.Join(gs.dir, contentsFile), &contents); err != nil {
		return nil, core.WrapError(err, core.EFORMAT, "glyph set %q has no usable contents table", dir)
	}
	gs.contents = contents
	return gs, nil
}

func (r *Reader) ListData() ([]string, error) {
	return listFilesRecursive(filepath.Join(r.path, dataDirName))
}

func (r *Reader) ListImages() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.path, imagesDirName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot list images")
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r *Reader) ReadData(fileName string) ([]byte, error) {
	return readBinary(filepath.Join(r.path, dataDirName, filepath.FromSlash(fileName)))
}

func (r *Reader) ReadImage(fileName string) ([]byte, error) {
	return readBinary(filepath.Join(r.path, imagesDirName, fileName))
}

// Close releases the reader. Directory access needs no teardown, but
// the object model calls Close through the objects.UFOReader contract.
func (r *Reader) Close() error { return nil }

var _ objects.UFOReader = (*Reader)(nil)

func readBinary(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, core.Error(core.EMISSING, "no file %q", path)
	}
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot read %q", path)
	}
	return data, nil
}

// listFilesRecursive returns the slash-separated paths of all files
// below root, relative to root. A missing root is an empty listing.
func listFilesRecursive(root string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && os.IsNotExist(err) {
				return fs.SkipAll
			}
			return err
		}
		if !d.IsDir() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			names = append(names, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot list %q", root)
	}
	sort.Strings(names)
	return names, nil
}

// glyphSetReader reads GLIF files of one layer directory.
type glyphSetReader struct {
	dir      string
	contents map[string]string // glyph name -> file name
}

var _ objects.GlyphSetReader = (*glyphSetReader)(nil)

func (gs *glyphSetReader) Contents() ([]string, error) {
	names := make([]string, 0, len(gs.contents))
	for n := range gs.contents {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (gs *glyphSetReader) ReadGlyph(name string) (*objects.Glyph, error) {
	fileName, ok := gs.contents[name]
	if !ok {
		return nil, core.Error(core.EMISSING, "no glyph named %q in %q", name, gs.dir)
	}
	data, err := os.ReadFile(filepath.Join(gs.dir, fileName))
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot read glyph file %q", fileName)
	}
	glyph, err := readGlif(data)
	if err != nil {
		return nil, core.WrapError(err, core.Code(err), "glyph file %q", fileName)
	}
	return glyph, nil
}

// layerInfo mirrors layerinfo.plist.
type layerInfo struct {
	Color string                 `plist:"color,omitempty"`
	Lib   map[string]interface{} `plist:"lib,omitempty"`
}

func (gs *glyphSetReader) ReadLayerInfo(layer *objects.Layer) error {
	var info layerInfo
	err := readPlist(filepath.Join(gs.dir, layerInfoFile), &info)
	if core.Code(err) == core.EMISSING {
		return nil
	}
	if err != nil {
		return err
	}
	layer.Color = info.Color
	if len(info.Lib) > 0 {
		layer.Lib = normalizeLib(objects.Lib(info.Lib))
	}
	return nil
}
