package objects

import "strings"

// Features is the font's OpenType feature code, in .fea syntax. The
// text is kept verbatim; the object model does not parse it.
type Features struct {
	Text string
}

// NormalizeNewlines converts Windows and old Mac line endings to "\n".
func (f *Features) NormalizeNewlines() {
	f.Text = strings.ReplaceAll(f.Text, "\r\n", "\n")
	f.Text = strings.ReplaceAll(f.Text, "\r", "\n")
}
