package ufoio

import (
	"os"

	"howett.net/plist"

	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/objects"
)

// readPlist unmarshals the property list file at path into out. A
// missing file returns EMISSING, a malformed one EPARSE.
func readPlist(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Error(core.EMISSING, "no file %q", path)
		}
		return core.WrapError(err, core.EINTERNAL, "cannot read %q", path)
	}
	if _, err := plist.Unmarshal(data, out); err != nil {
		return core.WrapError(err, core.EPARSE, "malformed property list %q", path)
	}
	return nil
}

// writePlist marshals v as an XML property list to path.
func writePlist(path string, v interface{}) error {
	data, err := plist.MarshalIndent(v, plist.XMLFormat, "  ")
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot serialize %q", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write %q", path)
	}
	return nil
}

// normalizeValue post-processes a freshly unmarshaled plist value tree.
// The plist decoder hands out unsigned integers for non-negative
// <integer> elements; the object model stores all integers as int64 so
// that values compare equal across a save/load round trip.
func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case uint64:
		return int64(val)
	case uint32:
		return int64(val)
	case uint16:
		return int64(val)
	case uint8:
		return int64(val)
	case int:
		return int64(val)
	case []interface{}:
		for i, e := range val {
			val[i] = normalizeValue(e)
		}
		return val
	case map[string]interface{}:
		for k, e := range val {
			val[k] = normalizeValue(e)
		}
		return val
	}
	return v
}

// normalizeLib is normalizeValue over a whole lib.
func normalizeLib(lib objects.Lib) objects.Lib {
	for k, v := range lib {
		lib[k] = normalizeValue(v)
	}
	return lib
}

// toFloat converts any plist number to float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
