package objects

import "github.com/fonttools/ufoLib2/core"

// Number is a float64-valued fontinfo attribute. The UFO specification
// types these attributes "integer or float" and fontTools writes whole
// numbers as plist integers, so decoding must accept both element
// kinds. Encoding goes through the underlying float64 as a real.
type Number float64

// UnmarshalPlist accepts integer and real elements alike.
func (n *Number) UnmarshalPlist(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*n = Number(v)
	case float32:
		*n = Number(v)
	case int64:
		*n = Number(v)
	case uint64:
		*n = Number(v)
	case int:
		*n = Number(v)
	default:
		return core.Error(core.EPARSE, "numeric attribute holds %T, not a number", raw)
	}
	return nil
}
