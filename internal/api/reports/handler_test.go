package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTrackingCodeFormat(t *testing.T) {
	code := newTrackingCode()

	assert.Regexp(t, `^RPT-[0-9a-f]{8}$`, code)
}

func TestNewTrackingCodeUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := newTrackingCode()
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
