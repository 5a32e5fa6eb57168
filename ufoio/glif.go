package ufoio

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"howett.net/plist"

	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/geom"
	"github.com/fonttools/ufoLib2/objects"
	"github.com/fonttools/ufoLib2/pens"
)

// glifFormat is the GLIF version written; version 1 files are still
// accepted on read.
const glifFormat = 2

// The glif* structs mirror the GLIF XML elements. All numbers are kept
// as strings so that absent attributes, default values and minimal
// number formatting stay under our control.

type glifGlyph struct {
	XMLName    xml.Name        `xml:"glyph"`
	Name       string          `xml:"name,attr"`
	Format     int             `xml:"format,attr"`
	Advance    *glifAdvance    `xml:"advance"`
	Unicodes   []glifUnicode   `xml:"unicode"`
	Note       string          `xml:"note,omitempty"`
	Image      *glifImage      `xml:"image"`
	Guidelines []glifGuideline `xml:"guideline"`
	Anchors    []glifAnchor    `xml:"anchor"`
	Outline    *glifOutline    `xml:"outline"`
	Lib        *glifLib        `xml:"lib"`
}

type glifAdvance struct {
	Width  string `xml:"width,attr,omitempty"`
	Height string `xml:"height,attr,omitempty"`
}

type glifUnicode struct {
	Hex string `xml:"hex,attr"`
}

type glifImage struct {
	FileName string `xml:"fileName,attr"`
	XScale   string `xml:"xScale,attr,omitempty"`
	XYScale  string `xml:"xyScale,attr,omitempty"`
	YXScale  string `xml:"yxScale,attr,omitempty"`
	YScale   string `xml:"yScale,attr,omitempty"`
	XOffset  string `xml:"xOffset,attr,omitempty"`
	YOffset  string `xml:"yOffset,attr,omitempty"`
	Color    string `xml:"color,attr,omitempty"`
}

type glifGuideline struct {
	X          string `xml:"x,attr,omitempty"`
	Y          string `xml:"y,attr,omitempty"`
	Angle      string `xml:"angle,attr,omitempty"`
	Name       string `xml:"name,attr,omitempty"`
	Color      string `xml:"color,attr,omitempty"`
	Identifier string `xml:"identifier,attr,omitempty"`
}

type glifAnchor struct {
	X          string `xml:"x,attr"`
	Y          string `xml:"y,attr"`
	Name       string `xml:"name,attr,omitempty"`
	Color      string `xml:"color,attr,omitempty"`
	Identifier string `xml:"identifier,attr,omitempty"`
}

type glifOutline struct {
	Contours   []glifContour   `xml:"contour"`
	Components []glifComponent `xml:"component"`
}

type glifContour struct {
	Identifier string      `xml:"identifier,attr,omitempty"`
	Points     []glifPoint `xml:"point"`
}

type glifPoint struct {
	X          string `xml:"x,attr"`
	Y          string `xml:"y,attr"`
	Type       string `xml:"type,attr,omitempty"`
	Smooth     string `xml:"smooth,attr,omitempty"`
	Name       string `xml:"name,attr,omitempty"`
	Identifier string `xml:"identifier,attr,omitempty"`
}

type glifComponent struct {
	Base       string `xml:"base,attr"`
	XScale     string `xml:"xScale,attr,omitempty"`
	XYScale    string `xml:"xyScale,attr,omitempty"`
	YXScale    string `xml:"yxScale,attr,omitempty"`
	YScale     string `xml:"yScale,attr,omitempty"`
	XOffset    string `xml:"xOffset,attr,omitempty"`
	YOffset    string `xml:"yOffset,attr,omitempty"`
	Identifier string `xml:"identifier,attr,omitempty"`
}

// glifLib carries the embedded property list dict verbatim.
type glifLib struct {
	InnerXML string `xml:",innerxml"`
}

// fnum formats a number the shortest way that round-trips.
func fnum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// numAttr formats f, or returns "" when f equals the attribute default.
func numAttr(f, def float64) string {
	if f == def {
		return ""
	}
	return fnum(f)
}

// parseNum parses s, with def standing in for an absent attribute.
func parseNum(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, core.WrapError(err, core.EPARSE, "malformed number %q", s)
	}
	return f, nil
}

func transformAttrs(t geom.Transform) (xScale, xyScale, yxScale, yScale, xOffset, yOffset string) {
	return numAttr(t.XX, 1), numAttr(t.XY, 0), numAttr(t.YX, 0),
		numAttr(t.YY, 1), numAttr(t.DX, 0), numAttr(t.DY, 0)
}

func parseTransform(xScale, xyScale, yxScale, yScale, xOffset, yOffset string) (geom.Transform, error) {
	var t geom.Transform
	var err error
	if t.XX, err = parseNum(xScale, 1); err != nil {
		return t, err
	}
	if t.XY, err = parseNum(xyScale, 0); err != nil {
		return t, err
	}
	if t.YX, err = parseNum(yxScale, 0); err != nil {
		return t, err
	}
	if t.YY, err = parseNum(yScale, 1); err != nil {
		return t, err
	}
	if t.DX, err = parseNum(xOffset, 0); err != nil {
		return t, err
	}
	t.DY, err = parseNum(yOffset, 0)
	return t, err
}

// glifPen serializes point pen calls into a glifOutline.
type glifPen struct {
	outline glifOutline
	contour *glifContour
}

var _ pens.PointPen = (*glifPen)(nil)

func (p *glifPen) BeginPath(identifier string) error {
	p.contour = &glifContour{Identifier: identifier}
	return nil
}

func (p *glifPen) AddPoint(pt pens.Point) error {
	gp := glifPoint{
		X:          fnum(pt.X),
		Y:          fnum(pt.Y),
		Type:       string(pt.Type),
		Name:       pt.Name,
		Identifier: pt.Identifier,
	}
	if pt.Smooth {
		gp.Smooth = "yes"
	}
	p.contour.Points = append(p.contour.Points, gp)
	return nil
}

func (p *glifPen) EndPath() error {
	p.outline.Contours = append(p.outline.Contours, *p.contour)
	p.contour = nil
	return nil
}

func (p *glifPen) AddComponent(baseGlyph string, t geom.Transform, identifier string) error {
	c := glifComponent{Base: baseGlyph, Identifier: identifier}
	c.XScale, c.XYScale, c.YXScale, c.YScale, c.XOffset, c.YOffset = transformAttrs(t)
	p.outline.Components = append(p.outline.Components, c)
	return nil
}

// writeGlif serializes a glyph to GLIF format 2.
func writeGlif(g *objects.Glyph) ([]byte, error) {
	gg := glifGlyph{Name: g.Name(), Format: glifFormat, Note: g.Note}
	if g.Width != 0 || g.Height != 0 {
		gg.Advance = &glifAdvance{Width: numAttr(g.Width, 0), Height: numAttr(g.Height, 0)}
	}
	for _, u := range g.Unicodes {
		gg.Unicodes = append(gg.Unicodes, glifUnicode{Hex: fmt.Sprintf("%04X", u)})
	}
	if !g.Image.Empty() {
		img := &glifImage{FileName: g.Image.FileName, Color: g.Image.Color}
		img.XScale, img.XYScale, img.YXScale, img.YScale, img.XOffset, img.YOffset =
			transformAttrs(g.Image.Transform)
		gg.Image = img
	}
	for _, guide := range g.Guidelines {
		gg.Guidelines = append(gg.Guidelines, glifGuideline{
			X:          fnum(guide.X),
			Y:          fnum(guide.Y),
			Angle:      fnum(guide.Angle),
			Name:       guide.Name,
			Color:      guide.Color,
			Identifier: guide.Identifier(),
		})
	}
	for _, a := range g.Anchors {
		gg.Anchors = append(gg.Anchors, glifAnchor{
			X:          fnum(a.X),
			Y:          fnum(a.Y),
			Name:       a.Name,
			Color:      a.Color,
			Identifier: a.Identifier(),
		})
	}
	pen := &glifPen{}
	if err := g.DrawPoints(pen); err != nil {
		return nil, err
	}
	gg.Outline = &pen.outline
	if len(g.Lib) > 0 {
		body, err := plistDictBody(g.Lib)
		if err != nil {
			return nil, err
		}
		gg.Lib = &glifLib{InnerXML: body}
	}
	data, err := xml.MarshalIndent(gg, "", "  ")
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot serialize glyph %q", g.Name())
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

// readGlif parses a GLIF file into a fresh glyph.
func readGlif(data []byte) (*objects.Glyph, error) {
	var gg glifGlyph
	if err := xml.Unmarshal(data, &gg); err != nil {
		return nil, core.WrapError(err, core.EPARSE, "malformed GLIF")
	}
	if gg.Format != 1 && gg.Format != glifFormat {
		return nil, core.Error(core.EFORMAT, "unsupported GLIF format %d", gg.Format)
	}
	g := objects.NewGlyph(gg.Name)
	g.Note = strings.TrimSpace(gg.Note)
	var err error
	if gg.Advance != nil {
		if g.Width, err = parseNum(gg.Advance.Width, 0); err != nil {
			return nil, err
		}
		if g.Height, err = parseNum(gg.Advance.Height, 0); err != nil {
			return nil, err
		}
	}
	for _, u := range gg.Unicodes {
		cp, err := strconv.ParseInt(u.Hex, 16, 32)
		if err != nil {
			return nil, core.WrapError(err, core.EPARSE, "malformed unicode value %q", u.Hex)
		}
		g.Unicodes = append(g.Unicodes, rune(cp))
	}
	if gg.Image != nil {
		g.Image.FileName = gg.Image.FileName
		g.Image.Color = gg.Image.Color
		g.Image.Transform, err = parseTransform(gg.Image.XScale, gg.Image.XYScale,
			gg.Image.YXScale, gg.Image.YScale, gg.Image.XOffset, gg.Image.YOffset)
		if err != nil {
			return nil, err
		}
	}
	for _, raw := range gg.Guidelines {
		guide, err := parseGlifGuideline(raw)
		if err != nil {
			return nil, err
		}
		g.AppendGuideline(guide)
	}
	for _, raw := range gg.Anchors {
		a := &objects.Anchor{Name: raw.Name, Color: raw.Color}
		if a.X, err = parseNum(raw.X, 0); err != nil {
			return nil, err
		}
		if a.Y, err = parseNum(raw.Y, 0); err != nil {
			return nil, err
		}
		a.SetIdentifier(raw.Identifier)
		g.AppendAnchor(a)
	}
	if gg.Outline != nil {
		outline := gg.Outline
		if gg.Format == 1 {
			if outline, err = splitFormat1Anchors(outline, g); err != nil {
				return nil, err
			}
		}
		if err := replayOutline(outline, g.PointPen()); err != nil {
			return nil, err
		}
	}
	if gg.Lib != nil {
		lib, err := parsePlistDictBody(gg.Lib.InnerXML)
		if err != nil {
			return nil, err
		}
		g.Lib = lib
	}
	return g, nil
}

// splitFormat1Anchors converts the GLIF 1 anchor convention. Version 1
// has no anchor element; an anchor is stored as a contour with a single
// named point of type move. Such contours become anchors of g, the rest
// of the outline passes through.
func splitFormat1Anchors(outline *glifOutline, g *objects.Glyph) (*glifOutline, error) {
	kept := &glifOutline{Components: outline.Components}
	for _, contour := range outline.Contours {
		if len(contour.Points) != 1 || contour.Points[0].Type != "move" ||
			contour.Points[0].Name == "" {
			kept.Contours = append(kept.Contours, contour)
			continue
		}
		pt := contour.Points[0]
		a := &objects.Anchor{Name: pt.Name}
		var err error
		if a.X, err = parseNum(pt.X, 0); err != nil {
			return nil, err
		}
		if a.Y, err = parseNum(pt.Y, 0); err != nil {
			return nil, err
		}
		g.AppendAnchor(a)
	}
	return kept, nil
}

func parseGlifGuideline(raw glifGuideline) (*objects.Guideline, error) {
	guide := &objects.Guideline{Name: raw.Name, Color: raw.Color}
	var err error
	if guide.X, err = parseNum(raw.X, 0); err != nil {
		return nil, err
	}
	if guide.Y, err = parseNum(raw.Y, 0); err != nil {
		return nil, err
	}
	switch {
	case raw.Angle != "":
		if guide.Angle, err = parseNum(raw.Angle, 0); err != nil {
			return nil, err
		}
	case raw.X != "" && raw.Y == "":
		guide.Angle = 90
	}
	guide.SetIdentifier(raw.Identifier)
	if err := guide.Validate(); err != nil {
		return nil, err
	}
	return guide, nil
}

var validPointTypes = map[string]bool{
	"": true, "move": true, "line": true, "curve": true, "qcurve": true,
}

// replayOutline drives a parsed outline into a point pen.
func replayOutline(outline *glifOutline, pen pens.PointPen) error {
	for _, contour := range outline.Contours {
		if err := pen.BeginPath(contour.Identifier); err != nil {
			return err
		}
		for _, raw := range contour.Points {
			if !validPointTypes[raw.Type] {
				return core.Error(core.EFORMAT, "unknown point type %q", raw.Type)
			}
			pt := pens.Point{
				Type:       pens.PointType(raw.Type),
				Smooth:     raw.Smooth == "yes",
				Name:       raw.Name,
				Identifier: raw.Identifier,
			}
			var err error
			if pt.X, err = parseNum(raw.X, 0); err != nil {
				return err
			}
			if pt.Y, err = parseNum(raw.Y, 0); err != nil {
				return err
			}
			if err := pen.AddPoint(pt); err != nil {
				return err
			}
		}
		if err := pen.EndPath(); err != nil {
			return err
		}
	}
	for _, raw := range outline.Components {
		t, err := parseTransform(raw.XScale, raw.XYScale, raw.YXScale,
			raw.YScale, raw.XOffset, raw.YOffset)
		if err != nil {
			return err
		}
		if err := pen.AddComponent(raw.Base, t, raw.Identifier); err != nil {
			return err
		}
	}
	return nil
}

// plistDictBody serializes a lib and strips the property list framing,
// leaving the bare dict element for embedding into a GLIF lib element.
func plistDictBody(lib objects.Lib) (string, error) {
	data, err := plist.MarshalIndent(map[string]interface{}(lib), plist.XMLFormat, "  ")
	if err != nil {
		return "", core.WrapError(err, core.EINTERNAL, "cannot serialize glyph lib")
	}
	s := string(data)
	open := strings.Index(s, "<plist")
	if open < 0 {
		return "", core.Error(core.EINTERNAL, "unexpected property list framing")
	}
	open += strings.Index(s[open:], ">") + 1
	end := strings.LastIndex(s, "</plist>")
	if end < open {
		return "", core.Error(core.EINTERNAL, "unexpected property list framing")
	}
	return strings.TrimSpace(s[open:end]), nil
}

// parsePlistDictBody is the inverse of plistDictBody.
func parsePlistDictBody(body string) (objects.Lib, error) {
	doc := `<?xml version="1.0" encoding="UTF-8"?><plist version="1.0">` + body + `</plist>`
	var m map[string]interface{}
	if _, err := plist.Unmarshal([]byte(doc), &m); err != nil {
		return nil, core.WrapError(err, core.EPARSE, "malformed glyph lib")
	}
	return normalizeLib(objects.Lib(m)), nil
}
