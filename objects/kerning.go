package objects

// KerningPair names the two sides of a kerning entry. Either side is a
// glyph name or a kerning group name.
type KerningPair struct {
	First, Second string
}

// Kerning maps pairs to their kerning value in font units.
type Kerning map[KerningPair]float64

// Get returns the value for (first, second).
func (k Kerning) Get(first, second string) (float64, bool) {
	v, ok := k[KerningPair{first, second}]
	return v, ok
}

// Set stores a value for (first, second).
func (k Kerning) Set(first, second string, value float64) {
	k[KerningPair{first, second}] = value
}

// Delete removes the entry for (first, second), if present.
func (k Kerning) Delete(first, second string) {
	delete(k, KerningPair{first, second})
}

// Copy returns an independent copy of the kerning table.
func (k Kerning) Copy() Kerning {
	if k == nil {
		return nil
	}
	out := make(Kerning, len(k))
	for pair, v := range k {
		out[pair] = v
	}
	return out
}

// Groups maps group names to their member glyph names. Kerning groups
// use the "public.kern1." and "public.kern2." name prefixes.
type Groups map[string][]string

// Copy returns an independent copy of the groups table.
func (g Groups) Copy() Groups {
	if g == nil {
		return nil
	}
	out := make(Groups, len(g))
	for name, members := range g {
		out[name] = append([]string(nil), members...)
	}
	return out
}
