package objects

import "github.com/fonttools/ufoLib2/geom"

// Image is a glyph's background image reference: a file name within the
// font's image set, a placement transformation and an optional color.
// An Image with an empty FileName counts as unset.
type Image struct {
	FileName  string
	Transform geom.Transform
	Color     string
}

// NewImage returns an image reference with an identity transformation.
func NewImage(fileName string) Image {
	return Image{FileName: fileName, Transform: geom.Identity}
}

// Empty reports whether no image is referenced.
func (i Image) Empty() bool {
	return i.FileName == ""
}

// Clear removes the reference.
func (i *Image) Clear() {
	*i = Image{Transform: geom.Identity}
}
