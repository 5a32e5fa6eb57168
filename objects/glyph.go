package objects

import (
	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/geom"
	"github.com/fonttools/ufoLib2/pens"
)

// Glyph holds the outline and metadata of a single glyph: contours,
// components, anchors, guidelines, metrics, code points and a lib.
// A glyph does not know the layer it lives in; operations that resolve
// component references take an explicit Layer argument.
type Glyph struct {
	name string

	// Width and Height are the advance metrics, zero by default.
	Width, Height float64

	// Unicodes lists the code points assigned to the glyph, in order of
	// preference. A glyph may have several or none.
	Unicodes []rune

	// Note is free-form text about the glyph.
	Note string

	// Image is the background image reference, empty if unset.
	Image Image

	Lib     Lib
	TempLib Lib

	Contours   []*Contour
	Components []*Component
	Anchors    []*Anchor
	Guidelines []*Guideline
}

// NewGlyph creates an empty glyph. The name may be empty for glyphs not
// yet inserted into a layer.
func NewGlyph(name string) *Glyph {
	return &Glyph{name: name, Image: Image{Transform: geom.Identity}, Lib: Lib{}}
}

// Name returns the glyph's name. Renaming happens through the owning
// Layer, which keys its glyphs by name.
func (g *Glyph) Name() string { return g.name }

func (g *Glyph) setName(name string) { g.name = name }

// Unicode returns the first assigned code point, if any.
func (g *Glyph) Unicode() (rune, bool) {
	if len(g.Unicodes) == 0 {
		return 0, false
	}
	return g.Unicodes[0], true
}

// SetUnicode makes value the first of the assigned code points, removing
// a duplicate occurrence further back.
func (g *Glyph) SetUnicode(value rune) {
	for i, u := range g.Unicodes {
		if u == value {
			if i == 0 {
				return
			}
			g.Unicodes = append(g.Unicodes[:i], g.Unicodes[i+1:]...)
			break
		}
	}
	g.Unicodes = append([]rune{value}, g.Unicodes...)
}

// --- Containment ----------------------------------------------------------

// Clear removes anchors, components, contours, guidelines and the image
// reference. Metrics, lib and note stay.
func (g *Glyph) Clear() {
	g.Anchors = nil
	g.Components = nil
	g.Contours = nil
	g.Guidelines = nil
	g.Image.Clear()
}

// AppendContour adds a contour to the glyph.
func (g *Glyph) AppendContour(c *Contour) {
	g.Contours = append(g.Contours, c)
}

// AppendAnchor adds an anchor to the glyph.
func (g *Glyph) AppendAnchor(a *Anchor) {
	g.Anchors = append(g.Anchors, a)
}

// AppendGuideline adds a glyph-local guideline.
func (g *Glyph) AppendGuideline(gl *Guideline) {
	g.Guidelines = append(g.Guidelines, gl)
}

// RemoveComponent removes the given component, if present.
func (g *Glyph) RemoveComponent(c *Component) {
	for i, have := range g.Components {
		if have == c {
			g.Components = append(g.Components[:i], g.Components[i+1:]...)
			return
		}
	}
}

// Move shifts all contours, components and anchors by (dx, dy).
func (g *Glyph) Move(dx, dy float64) {
	for _, c := range g.Contours {
		c.Move(dx, dy)
	}
	for _, c := range g.Components {
		c.Move(dx, dy)
	}
	for _, a := range g.Anchors {
		a.Move(dx, dy)
	}
}

// --- Lib-wrapped attributes ------------------------------------------------

// MarkColor returns the glyph's mark color, or "" if unset.
func (g *Glyph) MarkColor() string {
	if g.Lib == nil {
		return ""
	}
	color, _ := g.Lib[MarkColorKey].(string)
	return color
}

// SetMarkColor sets the mark color; an empty value removes it.
func (g *Glyph) SetMarkColor(color string) {
	if color == "" {
		delete(g.Lib, MarkColorKey)
		return
	}
	g.ensureLib()
	g.Lib[MarkColorKey] = color
}

// VerticalOrigin returns the glyph's vertical origin, if set.
func (g *Glyph) VerticalOrigin() (float64, bool) {
	if g.Lib == nil {
		return 0, false
	}
	switch v := g.Lib[VerticalOriginKey].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// SetVerticalOrigin sets the vertical origin.
func (g *Glyph) SetVerticalOrigin(value float64) {
	g.ensureLib()
	g.Lib[VerticalOriginKey] = value
}

// ClearVerticalOrigin removes the vertical origin.
func (g *Glyph) ClearVerticalOrigin() {
	delete(g.Lib, VerticalOriginKey)
}

func (g *Glyph) ensureLib() {
	if g.Lib == nil {
		g.Lib = Lib{}
	}
}

// --- Object libs ------------------------------------------------------------

// ObjectLib returns the lib of a sub-object of this glyph (a contour,
// point, component, anchor or glyph-local guideline), stored centrally
// in the glyph's lib under public.objectLibs. A missing identifier on
// obj is assigned as a side effect. The returned mapping aliases the
// stored one; mutations are visible to subsequent calls.
func (g *Glyph) ObjectLib(obj HasIdentifier) Lib {
	g.ensureLib()
	return objectLib(g.Lib, obj, g.identifiersInUse())
}

// identifiersInUse collects all identifiers assigned on the glyph's
// sub-objects.
func (g *Glyph) identifiersInUse() map[string]bool {
	used := make(map[string]bool)
	add := func(id string) {
		if id != "" {
			used[id] = true
		}
	}
	for _, a := range g.Anchors {
		add(a.identifier)
	}
	for _, gl := range g.Guidelines {
		add(gl.identifier)
	}
	for _, c := range g.Contours {
		add(c.identifier)
		for _, p := range c.Points {
			add(p.identifier)
		}
	}
	for _, c := range g.Components {
		add(c.identifier)
	}
	return used
}

// --- Pen methods -------------------------------------------------------------

// DrawPoints replays the glyph's outline into a point pen: first all
// contours, then all component references.
func (g *Glyph) DrawPoints(pen pens.PointPen) error {
	for _, c := range g.Contours {
		if err := c.DrawPoints(pen); err != nil {
			return err
		}
	}
	for _, c := range g.Components {
		if err := c.DrawPoints(pen); err != nil {
			return err
		}
	}
	return nil
}

// PointPen returns a pen for others to draw points into this glyph.
func (g *Glyph) PointPen() pens.PointPen {
	return &glyphPointPen{glyph: g}
}

// --- Bounds and side-bearings ------------------------------------------------

// Bounds computes the exact bounding box of the glyph's outline. layer
// resolves component references and may be nil for component-free
// glyphs; the result is nil for an empty outline.
func (g *Glyph) Bounds(layer *Layer) (*geom.BoundingBox, error) {
	if layer == nil && len(g.Components) > 0 {
		return nil, core.Error(core.EINVALID, "layer is required to compute bounds of components")
	}
	pen := pens.NewBoundsPen(resolver(layer))
	if err := g.DrawPoints(pen); err != nil {
		return nil, err
	}
	return pen.Bounds(), nil
}

// ControlBounds is Bounds over control points only. Cheaper, but
// overshoots with extruding curvatures.
func (g *Glyph) ControlBounds(layer *Layer) (*geom.BoundingBox, error) {
	if layer == nil && len(g.Components) > 0 {
		return nil, core.Error(core.EINVALID, "layer is required to compute bounds of components")
	}
	pen := pens.NewControlBoundsPen(resolver(layer))
	if err := g.DrawPoints(pen); err != nil {
		return nil, err
	}
	return pen.Bounds(), nil
}

// resolver keeps a nil *Layer from turning into a non-nil interface.
func resolver(layer *Layer) pens.GlyphSet {
	if layer == nil {
		return nil
	}
	return layer
}

// LeftMargin returns the space from the origin to the left edge of the
// outline. ok is false for an empty outline.
func (g *Glyph) LeftMargin(layer *Layer) (margin float64, ok bool, err error) {
	bounds, err := g.Bounds(layer)
	if err != nil || bounds == nil {
		return 0, false, err
	}
	return bounds.XMin, true, nil
}

// SetLeftMargin moves the outline so that the left margin becomes value,
// widening the advance by the shift. No-op for an empty outline.
func (g *Glyph) SetLeftMargin(value float64, layer *Layer) error {
	bounds, err := g.Bounds(layer)
	if err != nil || bounds == nil {
		return err
	}
	diff := value - bounds.XMin
	if diff != 0 {
		g.Width += diff
		g.Move(diff, 0)
	}
	return nil
}

// RightMargin returns the space from the right edge of the outline to
// the advance width. ok is false for an empty outline.
func (g *Glyph) RightMargin(layer *Layer) (margin float64, ok bool, err error) {
	bounds, err := g.Bounds(layer)
	if err != nil || bounds == nil {
		return 0, false, err
	}
	return g.Width - bounds.XMax, true, nil
}

// SetRightMargin adjusts the advance width so that the right margin
// becomes value. No-op for an empty outline.
func (g *Glyph) SetRightMargin(value float64, layer *Layer) error {
	bounds, err := g.Bounds(layer)
	if err != nil || bounds == nil {
		return err
	}
	g.Width = bounds.XMax + value
	return nil
}

// BottomMargin returns the space from the bottom of the canvas to the
// bottom of the outline. ok is false for an empty outline.
func (g *Glyph) BottomMargin(layer *Layer) (margin float64, ok bool, err error) {
	bounds, err := g.Bounds(layer)
	if err != nil || bounds == nil {
		return 0, false, err
	}
	if origin, has := g.VerticalOrigin(); has {
		return bounds.YMin - (origin - g.Height), true, nil
	}
	return bounds.YMin, true, nil
}

// SetBottomMargin grows or shrinks the height so that the bottom margin
// becomes value. No-op for an empty outline.
func (g *Glyph) SetBottomMargin(value float64, layer *Layer) error {
	bounds, err := g.Bounds(layer)
	if err != nil || bounds == nil {
		return err
	}
	origin, has := g.VerticalOrigin()
	var oldValue float64
	if has {
		oldValue = bounds.YMin - (origin - g.Height)
	} else {
		oldValue = bounds.YMin
		g.SetVerticalOrigin(g.Height)
	}
	g.Height += value - oldValue
	return nil
}

// TopMargin returns the space from the top of the canvas to the top of
// the outline. ok is false for an empty outline.
func (g *Glyph) TopMargin(layer *Layer) (margin float64, ok bool, err error) {
	bounds, err := g.Bounds(layer)
	if err != nil || bounds == nil {
		return 0, false, err
	}
	if origin, has := g.VerticalOrigin(); has {
		return origin - bounds.YMax, true, nil
	}
	return g.Height - bounds.YMax, true, nil
}

// SetTopMargin moves the vertical origin so that the top margin becomes
// value, adjusting the height by the difference. No-op for an empty
// outline.
func (g *Glyph) SetTopMargin(value float64, layer *Layer) error {
	bounds, err := g.Bounds(layer)
	if err != nil || bounds == nil {
		return err
	}
	var oldValue float64
	if origin, has := g.VerticalOrigin(); has {
		oldValue = origin - bounds.YMax
	} else {
		oldValue = g.Height - bounds.YMax
	}
	if oldValue != value {
		g.SetVerticalOrigin(bounds.YMax + value)
		g.Height += value - oldValue
	}
	return nil
}

// --- Copying -----------------------------------------------------------------

// Copy returns a fully independent deep copy of the glyph.
func (g *Glyph) Copy() *Glyph {
	out := &Glyph{
		name:     g.name,
		Width:    g.Width,
		Height:   g.Height,
		Note:     g.Note,
		Image:    g.Image,
		Lib:      g.Lib.Copy(),
		TempLib:  g.TempLib.Copy(),
		Anchors:  copyAnchors(g.Anchors),
		Contours: copyContours(g.Contours),
	}
	if g.Unicodes != nil {
		out.Unicodes = append([]rune(nil), g.Unicodes...)
	}
	if g.Components != nil {
		out.Components = make([]*Component, len(g.Components))
		for i, c := range g.Components {
			out.Components[i] = c.Copy()
		}
	}
	out.Guidelines = copyGuidelines(g.Guidelines)
	return out
}

// CopyNamed is Copy with the clone renamed.
func (g *Glyph) CopyNamed(name string) *Glyph {
	out := g.Copy()
	out.name = name
	return out
}

// CopyDataFrom overwrites everything except the name with deep copies of
// the other glyph's data.
func (g *Glyph) CopyDataFrom(other *Glyph) {
	name := g.name
	*g = *other.Copy()
	g.name = name
}

func copyAnchors(as []*Anchor) []*Anchor {
	if as == nil {
		return nil
	}
	out := make([]*Anchor, len(as))
	for i, a := range as {
		out[i] = a.Copy()
	}
	return out
}

func copyContours(cs []*Contour) []*Contour {
	if cs == nil {
		return nil
	}
	out := make([]*Contour, len(cs))
	for i, c := range cs {
		out[i] = c.Copy()
	}
	return out
}
