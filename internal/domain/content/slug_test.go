package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Flood Safety Guidelines", "flood-safety-guidelines"},
		{"  Earthquake -- Do's & Don'ts ", "earthquake-dos-donts"},
		{"///", "page"},
		{"", "page"},
		{"Héat Wave", "hat-wave"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeSlug(tt.in), "input %q", tt.in)
	}
}
