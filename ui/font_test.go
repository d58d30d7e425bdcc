package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFontName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Courier New", "couriernew"},
		{"courier-new", "couriernew"},
		{"courier_new", "couriernew"},
		{"Arial", "arial"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeFontName(tt.in))
	}
}

func TestResolveFontResourceUnknownFamily(t *testing.T) {
	// An unresolvable family degrades to nil, which means toolkit default.
	assert.Nil(t, resolveFontResource("definitely-not-an-installed-font-xyz"))
	assert.Nil(t, resolveFontResource(""))
}

func TestFontCandidateDirsNotEmpty(t *testing.T) {
	assert.NotEmpty(t, fontCandidateDirs())
}
