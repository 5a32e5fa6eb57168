package ufoio

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestUserNameToFileName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.io")
	defer teardown()
	cases := []struct{ in, out string }{
		{"a", "a"},
		{"A", "A_"},
		{"AE", "A_E_"},
		{"A.alt", "A_.alt"},
		{".notdef", "_notdef"},
		{"T_H", "T__H_"},
		{"con", "con_"},
		{"alt.con", "alt.con_"},
		{"a:b", "a_b"},
		{"fi", "fi"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, UserNameToFileName(c.in, nil, ".glif"), "input %q", c.in)
	}
}

func TestUserNameToFileNameClash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.io")
	defer teardown()
	existing := map[string]bool{}
	first := glyphFileName("A", existing)
	assert.Equal(t, "A_.glif", first)
	// "a_" mangles to the same case-insensitive file name as "A".
	second := glyphFileName("a_", existing)
	assert.Equal(t, "a_000000000000001.glif", second)
	assert.True(t, existing[strings.ToLower(second)])
}

func TestUserNameToFileNameLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.io")
	defer teardown()
	long := strings.Repeat("x", 300)
	name := UserNameToFileName(long, nil, ".glif")
	assert.LessOrEqual(t, len(name)+len(".glif"), maxFileNameLength)
}
