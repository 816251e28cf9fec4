package feed

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateShortStringUntouched(t *testing.T) {
	assert.Equal(t, "bridge collapsed", truncate("bridge collapsed", 200))
}

func TestTruncateCutsOnRuneBoundary(t *testing.T) {
	urdu := "پل ٹوٹ گیا ہے اور سڑک بند ہے"

	got := truncate(urdu, 10)

	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
	assert.Equal(t, string([]rune(urdu)[:10])+"…", got)
	assert.NotContains(t, got, "�")
}

func TestTruncateCountsRunesNotBytes(t *testing.T) {
	// 5 runes, 10 bytes: a byte-based cut at 5 would split mid-character
	s := "آآآآآ"
	assert.Equal(t, s, truncate(s, 5))
}
