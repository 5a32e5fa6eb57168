package ufoio

import (
	"fmt"
	"strings"
)

// illegalCharacters may not occur in file names on common file systems.
const illegalCharacters = "\"*+/:<>?[\\]|"

// reservedFileNames are name stems Windows refuses to create.
var reservedFileNames = map[string]bool{
	"con": true, "prn": true, "aux": true, "clock$": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true,
	"lpt1": true, "lpt2": true, "lpt3": true,
}

const maxFileNameLength = 255

// UserNameToFileName converts an arbitrary glyph or layer name into a
// unique file system safe name, per the UFO conventions:
//
//   - illegal and control characters become "_",
//   - an ASCII capital gets "_" appended, so "A" and "a" cannot
//     collide on case-insensitive file systems,
//   - an initial "." becomes "_", keeping the file visible,
//   - reserved Windows name stems get "_" appended,
//   - the result is clipped to 255 characters minus the suffix.
//
// existing holds the already taken names (lower-cased, with suffix);
// on a clash a numbered variant is chosen. The caller adds the returned
// name to existing.
func UserNameToFileName(userName string, existing map[string]bool, suffix string) string {
	var b strings.Builder
	for i, r := range userName {
		switch {
		case r < 0x20 || r == 0x7f || strings.ContainsRune(illegalCharacters, r):
			b.WriteByte('_')
		case r == '.' && i == 0:
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	name := b.String()
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if reservedFileNames[strings.ToLower(part)] {
			parts[i] = part + "_"
		}
	}
	name = strings.Join(parts, ".")
	if max := maxFileNameLength - len(suffix); len(name) > max {
		name = name[:max]
	}
	if existing == nil || !existing[strings.ToLower(name+suffix)] {
		return name
	}
	// Clash with a previously generated name, try numbered variants.
	for n := 1; ; n++ {
		counter := fmt.Sprintf("%015d", n)
		max := maxFileNameLength - len(suffix) - len(counter)
		candidate := name
		if len(candidate) > max {
			candidate = candidate[:max]
		}
		candidate += counter
		if !existing[strings.ToLower(candidate+suffix)] {
			return candidate
		}
	}
}

// glyphFileName mangles a glyph name into its .glif file name and
// records it in existing.
func glyphFileName(glyphName string, existing map[string]bool) string {
	name := UserNameToFileName(glyphName, existing, ".glif")
	existing[strings.ToLower(name+".glif")] = true
	return name + ".glif"
}

// layerDirName mangles a non-default layer name into its glyphs.*
// directory name. existing tracks the mangled stems without the
// "glyphs." prefix.
func layerDirName(layerName string, existing map[string]bool) string {
	name := UserNameToFileName(layerName, existing, "")
	existing[strings.ToLower(name)] = true
	return "glyphs." + name
}
