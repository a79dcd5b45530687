package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"jOhN   doe", "John Doe"},
		{"ana-maría o'brien", "Ana-María O'Brien"},
		{"  maria   santos  ", "Maria Santos"},
		{"jean-luc", "Jean-Luc"},
		{"anna/bella", "Anna/Bella"},
		{"ÉLODIE", "Élodie"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatName(tc.in), "input %q", tc.in)
	}
}

func TestFormatNameIdempotent(t *testing.T) {
	inputs := []string{"jOhN   doe", "ana-maría o'brien", "maria santos", "x"}
	for _, in := range inputs {
		once := FormatName(in)
		assert.Equal(t, once, FormatName(once), "input %q", in)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "maria-santos", Slugify("Maria Santos"))
	assert.Equal(t, "john-doe", Slugify("  John   Doe "))
	// punctuation is kept, only whitespace becomes hyphens
	assert.Equal(t, "o'brien", Slugify("O'Brien"))
	assert.Equal(t, "", Slugify(""))
}
