package objects

import "github.com/fonttools/ufoLib2/core"

// Guideline is a straight guide through (X, Y) at Angle degrees. The
// same shape serves font-global guidelines (owned by Info) and
// glyph-local ones (owned by Glyph).
type Guideline struct {
	X, Y  float64
	Angle float64
	Name  string
	Color string

	identifier string
}

func (g *Guideline) Identifier() string      { return g.identifier }
func (g *Guideline) SetIdentifier(id string) { g.identifier = id }

// Validate checks the data composition restrictions of the UFO spec.
func (g *Guideline) Validate() error {
	if g.Angle < 0 || g.Angle > 360 {
		return core.Error(core.EINVALID, "guideline angle must be between 0 and 360, is %g", g.Angle)
	}
	return nil
}

// MarshalPlist writes the guideline as a property list dictionary.
func (g *Guideline) MarshalPlist() (interface{}, error) {
	d := map[string]interface{}{
		"x":     g.X,
		"y":     g.Y,
		"angle": g.Angle,
	}
	if g.Name != "" {
		d["name"] = g.Name
	}
	if g.Color != "" {
		d["color"] = g.Color
	}
	if g.identifier != "" {
		d["identifier"] = g.identifier
	}
	return d, nil
}

// UnmarshalPlist reads a guideline dictionary. A dictionary with only x
// describes a vertical guide, only y a horizontal one.
func (g *Guideline) UnmarshalPlist(unmarshal func(interface{}) error) error {
	var raw struct {
		X          *Number `plist:"x"`
		Y          *Number `plist:"y"`
		Angle      *Number `plist:"angle"`
		Name       string  `plist:"name"`
		Color      string  `plist:"color"`
		Identifier string  `plist:"identifier"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*g = Guideline{Name: raw.Name, Color: raw.Color, identifier: raw.Identifier}
	if raw.X != nil {
		g.X = float64(*raw.X)
	}
	if raw.Y != nil {
		g.Y = float64(*raw.Y)
	}
	switch {
	case raw.Angle != nil:
		g.Angle = float64(*raw.Angle)
	case raw.X != nil && raw.Y == nil:
		g.Angle = 90
	default:
		g.Angle = 0
	}
	return g.Validate()
}

// Copy returns an independent copy of the guideline.
func (g *Guideline) Copy() *Guideline {
	out := *g
	return &out
}

func copyGuidelines(gls []*Guideline) []*Guideline {
	if gls == nil {
		return nil
	}
	out := make([]*Guideline, len(gls))
	for i, g := range gls {
		out[i] = g.Copy()
	}
	return out
}
