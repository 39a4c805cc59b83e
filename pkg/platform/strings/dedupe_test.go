package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	cases := map[string]struct {
		input []string
		want  []string
	}{
		"nil":                {nil, nil},
		"trims":              {[]string{" a ", "b  "}, []string{"a", "b"}},
		"drops empties":      {[]string{"a", "", "   ", "b"}, []string{"a", "b"}},
		"dedupes in order":   {[]string{"b", "a", "b", "a"}, []string{"b", "a"}},
		"case is preserved":  {[]string{"Host", "host"}, []string{"Host", "host"}},
		"trim before dedupe": {[]string{" a", "a "}, []string{"a"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, DedupeAndTrim(tc.input))
		})
	}
}

func TestDedupeAndTrimLower(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, DedupeAndTrimLower([]string{" A ", "b", "a", "B"}))
	assert.Nil(t, DedupeAndTrimLower(nil))
}
