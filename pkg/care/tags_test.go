package care

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"dry", []string{"dry"}},
		{" problem, dry ,, watering ", []string{"problem", "dry", "watering"}},
		{"growth, dry, growth", []string{"growth", "dry"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTags(tt.in), "ParseTags(%q)", tt.in)
	}
}
