package objects

import "github.com/google/uuid"

// HasIdentifier is satisfied by every object that may carry a UFO
// identifier: Contour, Point, Component, Anchor and Guideline.
// Identifiers are stable strings, unique per owning Font or Glyph, and
// key the owner's public.objectLibs mapping.
type HasIdentifier interface {
	Identifier() string
	SetIdentifier(id string)
}

// newIdentifier generates a fresh identifier not contained in used.
// UUID4 makes collisions with identifiers read back from storage all but
// impossible; the retry loop makes them impossible.
func newIdentifier(used map[string]bool) string {
	id := uuid.New().String()
	for used[id] {
		id = uuid.New().String()
	}
	return id
}
