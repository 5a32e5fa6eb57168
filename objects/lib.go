package objects

// Reserved lib keys defined by the UFO specification.
const (
	// ObjectLibsKey is the lib key under which a Font or Glyph centrally
	// stores the libs of its identifier-carrying sub-objects.
	ObjectLibsKey = "public.objectLibs"

	// GlyphOrderKey is the lib key holding the preferred glyph order.
	GlyphOrderKey = "public.glyphOrder"

	// MarkColorKey is the glyph lib key holding the glyph's mark color.
	MarkColorKey = "public.markColor"

	// VerticalOriginKey is the glyph lib key holding the vertical origin.
	VerticalOriginKey = "public.verticalOrigin"
)

// DefaultLayerName is the conventional name of a UFO's default layer.
const DefaultLayerName = "public.default"

// Lib is an open-ended mapping from string keys to plist-compatible
// values: strings, integers, floats, booleans, byte blobs, sequences and
// nested string-keyed mappings. Libs round-trip through lib.plist and the
// embedded lib element of GLIF files without loss.
type Lib map[string]interface{}

// Copy returns a deep copy of the lib.
func (l Lib) Copy() Lib {
	if l == nil {
		return nil
	}
	out := make(Lib, len(l))
	for k, v := range l {
		out[k] = copyLibValue(v)
	}
	return out
}

func copyLibValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Lib:
		return val.Copy()
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, e := range val {
			out[k] = copyLibValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = copyLibValue(e)
		}
		return out
	case []byte:
		out := make([]byte, len(val))
		copy(out, val)
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	}
	return v
}

// objectLibs returns the mutable public.objectLibs mapping inside
// parent, creating it on demand.
func objectLibs(parent Lib) map[string]interface{} {
	switch libs := parent[ObjectLibsKey].(type) {
	case map[string]interface{}:
		return libs
	case Lib:
		return libs
	}
	libs := map[string]interface{}{}
	parent[ObjectLibsKey] = libs
	return libs
}

// objectLib returns the lib of obj inside parent, assigning a fresh
// identifier to obj if it has none. used holds the identifiers already
// in play on the owner, so a newly generated one never collides.
func objectLib(parent Lib, obj HasIdentifier, used map[string]bool) Lib {
	if obj.Identifier() == "" {
		obj.SetIdentifier(newIdentifier(used))
	}
	libs := objectLibs(parent)
	switch lib := libs[obj.Identifier()].(type) {
	case map[string]interface{}:
		return Lib(lib)
	case Lib:
		return lib
	}
	lib := map[string]interface{}{}
	libs[obj.Identifier()] = lib
	return Lib(lib)
}

// pruneObjectLibs drops object-lib entries whose identifier is no longer
// in use on the owner, as well as empty entries. Called before the owner
// serializes its lib.
func pruneObjectLibs(parent Lib, used map[string]bool) {
	if _, ok := parent[ObjectLibsKey]; !ok {
		return
	}
	libs := objectLibs(parent)
	pruned := map[string]interface{}{}
	for id, lib := range libs {
		if !used[id] {
			continue
		}
		switch l := lib.(type) {
		case map[string]interface{}:
			if len(l) == 0 {
				continue
			}
		case Lib:
			if len(l) == 0 {
				continue
			}
		}
		pruned[id] = lib
	}
	parent[ObjectLibsKey] = pruned
	if len(pruned) == 0 {
		delete(parent, ObjectLibsKey)
	}
}
