package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuthorIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"simple", "1,2", []int{1, 2}},
		{"whitespace", " 1 , 2 ", []int{1, 2}},
		{"empty string", "", []int{}},
		{"empty tokens", "1,,2,", []int{1, 2}},
		{"non-numeric tokens dropped", "abc, ,3", []int{3}},
		{"duplicates kept", "2,2", []int{2, 2}},
		{"order preserved", "3,1,2", []int{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseAuthorIDs(tt.input))
		})
	}
}
