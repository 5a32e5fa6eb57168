package ufoio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/objects"
)

// fontCreator identifies this library in metainfo.plist.
const fontCreator = "github.com/fonttools/ufoLib2"

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

// Writer assembles a fresh UFO package in a temporary directory next to
// the target path. Close swaps it into place, so an error or crash
// midway leaves any previous package untouched; Discard throws the
// partial package away.
type Writer struct {
	finalPath string
	tmpPath   string
	layerDirs map[string]string
	dirStems  map[string]bool
	done      bool
}

// NewWriter starts a package write targeting path. An existing package
// at path is only replaced when overwrite is set.
func NewWriter(path string, overwrite bool) (*Writer, error) {
	tracer().Infof("writing UFO package %q", path)
	if _, err := os.Stat(path); err == nil && !overwrite {
		return nil, core.Error(core.ECONSISTENCY, "%q already exists", path)
	}
	tmp, err := os.MkdirTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot create staging directory for %q", path)
	}
	w := &Writer{
		finalPath: path,
		tmpPath:   tmp,
		layerDirs: map[string]string{},
		dirStems:  map[string]bool{},
	}
	meta := metaInfo{Creator: fontCreator, FormatVersion: ufoFormatVersion}
	if err := writePlist(filepath.Join(tmp, metaInfoFile), meta); err != nil {
		w.Discard()
		return nil, err
	}
	return w, nil
}

func (w *Writer) WriteInfo(info *objects.Info) error {
	if info.Empty() {
		return nil
	}
	return writePlist(filepath.Join(w.tmpPath, fontInfoFile), info)
}

func (w *Writer) WriteFeatures(text string) error {
	if text == "" {
		return nil
	}
	if err := os.WriteFile(filepath.Join(w.tmpPath, featuresFile), []byte(text), 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write feature file")
	}
	return nil
}

func (w *Writer) WriteGroups(groups objects.Groups) error {
	if len(groups) == 0 {
		return nil
	}
	return writePlist(filepath.Join(w.tmpPath, groupsFile), map[string][]string(groups))
}

func (w *Writer) WriteKerning(kerning objects.Kerning) error {
	if len(kerning) == 0 {
		return nil
	}
	nested := map[string]map[string]float64{}
	for pair, value := range kerning {
		row, ok := nested[pair.First]
		if !ok {
			row = map[string]float64{}
			nested[pair.First] = row
		}
		row[pair.Second] = value
	}
	return writePlist(filepath.Join(w.tmpPath, kerningFile), nested)
}

func (w *Writer) WriteLib(lib objects.Lib) error {
	if len(lib) == 0 {
		return nil
	}
	return writePlist(filepath.Join(w.tmpPath, libFile), map[string]interface{}(lib))
}

func (w *Writer) WriteLayerContents(entries []objects.LayerEntry) error {
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Name, w.layerDir(entry.Name, entry.Default)}
	}
	return writePlist(filepath.Join(w.tmpPath, layerContentsFile), rows)
}

// layerDir maps a layer name to its directory, assigning one on first
// use so that WriteLayerContents and GlyphSet agree.
func (w *Writer) layerDir(layerName string, defaultLayer bool) string {
	if dir, ok := w.layerDirs[layerName]; ok {
		return dir
	}
	dir := defaultGlyphsDir
	if !defaultLayer {
		dir = layerDirName(layerName, w.dirStems)
	}
	w.layerDirs[layerName] = dir
	return dir
}

func (w *Writer) GlyphSet(layerName string, defaultLayer bool) (objects.GlyphSetWriter, error) {
	dir := filepath.Join(w.tmpPath, w.layerDir(layerName, defaultLayer))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot create glyph set for layer %q", layerName)
	}
	return &glyphSetWriter{
		dir:      dir,
		contents: map[string]string{},
		files:    map[string]bool{},
	}, nil
}

func (w *Writer) WriteData(fileName string, data []byte) error {
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(fileName)))
	if clean == "" || clean == "." || strings.HasPrefix(clean, "..") || strings.HasPrefix(clean, "/") {
		return core.Error(core.EINVALID, "data file name %q must stay inside the package", fileName)
	}
	path := filepath.Join(w.tmpPath, dataDirName, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create data directory")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write data file %q", fileName)
	}
	return nil
}

func (w *Writer) WriteImage(fileName string, data []byte) error {
	if fileName == "" || strings.ContainsAny(fileName, "/\\") {
		return core.Error(core.EINVALID, "image file name %q must be a plain file name", fileName)
	}
	if !bytes.HasPrefix(data, pngHeader) {
		return core.Error(core.EINVALID, "image %q is not a PNG file", fileName)
	}
	dir := filepath.Join(w.tmpPath, imagesDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create images directory")
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write image %q", fileName)
	}
	return nil
}

var _ objects.UFOWriter = (*Writer)(nil)

// Close swaps the staged package into place. A previous package at the
// target path is moved aside first and removed only after the swap
// succeeded.
func (w *Writer) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	old := ""
	if _, err := os.Stat(w.finalPath); err == nil {
		old = w.finalPath + ".replaced"
		if err := os.Rename(w.finalPath, old); err != nil {
			os.RemoveAll(w.tmpPath)
			return core.WrapError(err, core.EINTERNAL, "cannot move previous package aside")
		}
	}
	if err := os.Rename(w.tmpPath, w.finalPath); err != nil {
		if old != "" {
			os.Rename(old, w.finalPath) // best effort restore
		}
		os.RemoveAll(w.tmpPath)
		return core.WrapError(err, core.EINTERNAL, "cannot move package into place")
	}
	if old != "" {
		if err := os.RemoveAll(old); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot remove previous package")
		}
	}
	return nil
}

// Discard throws the staged package away. Safe after Close.
func (w *Writer) Discard() {
	if w.done {
		return
	}
	w.done = true
	os.RemoveAll(w.tmpPath)
}

// glyphSetWriter writes GLIF files of one layer directory.
type glyphSetWriter struct {
	dir      string
	contents map[string]string // glyph name -> file name
	files    map[string]bool
}

var _ objects.GlyphSetWriter = (*glyphSetWriter)(nil)

func (gs *glyphSetWriter) WriteGlyph(g *objects.Glyph) error {
	if g.Name() == "" {
		return core.Error(core.EINVALID, "glyph has no name")
	}
	data, err := writeGlif(g)
	if err != nil {
		return err
	}
	fileName := glyphFileName(g.Name(), gs.files)
	if err := os.WriteFile(filepath.Join(gs.dir, fileName), data, 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write glyph file %q", fileName)
	}
	gs.contents[g.Name()] = fileName
	return nil
}

func (gs *glyphSetWriter) WriteLayerInfo(layer *objects.Layer) error {
	if layer.Color == "" && len(layer.Lib) == 0 {
		return nil
	}
	info := layerInfo{Color: layer.Color, Lib: layer.Lib}
	return writePlist(filepath.Join(gs.dir, layerInfoFile), info)
}

func (gs *glyphSetWriter) WriteContents() error {
	return writePlist(filepath.Join(gs.dir, contentsFile), gs.contents)
}
