package objects

import (
	"bytes"
	"sort"
	"strings"

	"github.com/fonttools/ufoLib2/core"
)

// dataStore is a lazy file-name-to-bytes map, shared by DataSet and
// ImageSet. In a lazily opened font all entries start out pending and
// are read on first access.
type dataStore struct {
	data    map[string][]byte
	pending map[string]bool
	read    func(fileName string) ([]byte, error)
}

func newDataStore() dataStore {
	return dataStore{data: make(map[string][]byte)}
}

func loadDataStore(names []string, read func(string) ([]byte, error), lazy bool) (dataStore, error) {
	s := newDataStore()
	if lazy {
		s.read = read
		s.pending = make(map[string]bool, len(names))
		for _, n := range names {
			s.pending[n] = true
		}
		return s, nil
	}
	for _, n := range names {
		data, err := read(n)
		if err != nil {
			return s, err
		}
		s.data[n] = data
	}
	return s, nil
}

// Len returns the number of entries, loaded or not.
func (s *dataStore) Len() int {
	return len(s.data) + len(s.pending)
}

// Contains reports whether an entry exists, without loading it.
func (s *dataStore) Contains(fileName string) bool {
	_, ok := s.data[fileName]
	return ok || s.pending[fileName]
}

// Keys returns all file names, sorted, without loading anything.
func (s *dataStore) Keys() []string {
	names := make([]string, 0, s.Len())
	for n := range s.data {
		names = append(names, n)
	}
	for n := range s.pending {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Get returns the named entry, reading it from the package if it is
// still pending.
func (s *dataStore) Get(fileName string) ([]byte, error) {
	if data, ok := s.data[fileName]; ok {
		return data, nil
	}
	if !s.pending[fileName] {
		return nil, core.Error(core.EMISSING, "no file named %q", fileName)
	}
	data, err := s.read(fileName)
	if err != nil {
		return nil, err
	}
	s.data[fileName] = data
	delete(s.pending, fileName)
	return data, nil
}

func (s *dataStore) put(fileName string, data []byte) {
	delete(s.pending, fileName)
	s.data[fileName] = data
}

// Delete removes the named entry, loaded or pending.
func (s *dataStore) Delete(fileName string) error {
	if !s.Contains(fileName) {
		return core.Error(core.EMISSING, "no file named %q", fileName)
	}
	delete(s.data, fileName)
	delete(s.pending, fileName)
	return nil
}

// Unlazify reads every pending entry. Idempotent.
func (s *dataStore) Unlazify() error {
	for name := range s.pending {
		if _, err := s.Get(name); err != nil {
			return err
		}
	}
	return nil
}

// Lazy reports whether any entries are still pending.
func (s *dataStore) Lazy() bool {
	return len(s.pending) > 0
}

func (s *dataStore) copyInto(dst *dataStore) error {
	if err := s.Unlazify(); err != nil {
		return err
	}
	for name, data := range s.data {
		dst.data[name] = append([]byte(nil), data...)
	}
	return nil
}

func (s *dataStore) writeTo(write func(fileName string, data []byte) error) error {
	for _, name := range s.Keys() {
		data, err := s.Get(name)
		if err != nil {
			return err
		}
		if err := write(name, data); err != nil {
			return err
		}
	}
	return nil
}

// DataSet holds the arbitrary files under the font's data directory,
// keyed by their path relative to it.
type DataSet struct {
	dataStore
}

// NewDataSet creates an empty, eager data set.
func NewDataSet() *DataSet {
	return &DataSet{newDataStore()}
}

// Put stores data under fileName, replacing any existing entry.
func (s *DataSet) Put(fileName string, data []byte) error {
	if fileName == "" || strings.HasPrefix(fileName, "/") {
		return core.Error(core.EINVALID, "data file name %q must be a relative path", fileName)
	}
	s.put(fileName, data)
	return nil
}

// Copy returns a fully independent deep copy, materializing the set
// first.
func (s *DataSet) Copy() (*DataSet, error) {
	out := NewDataSet()
	if err := s.copyInto(&out.dataStore); err != nil {
		return nil, err
	}
	return out, nil
}

// ImageSet holds the PNG files under the font's images directory, keyed
// by plain file name.
type ImageSet struct {
	dataStore
}

// NewImageSet creates an empty, eager image set.
func NewImageSet() *ImageSet {
	return &ImageSet{newDataStore()}
}

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

// Put stores an image, replacing any existing entry. The file name must
// be plain (no directories) and the data must be a PNG.
func (s *ImageSet) Put(fileName string, data []byte) error {
	if fileName == "" || strings.ContainsAny(fileName, "/\\") {
		return core.Error(core.EINVALID, "image file name %q must be a plain file name", fileName)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		return core.Error(core.EINVALID, "image %q is not a PNG file", fileName)
	}
	s.put(fileName, data)
	return nil
}

// Copy returns a fully independent deep copy, materializing the set
// first.
func (s *ImageSet) Copy() (*ImageSet, error) {
	out := NewImageSet()
	if err := s.copyInto(&out.dataStore); err != nil {
		return nil, err
	}
	return out, nil
}
