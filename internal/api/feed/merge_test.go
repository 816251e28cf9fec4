package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(min int) time.Time {
	return time.Date(2025, 6, 1, 12, min, 0, 0, time.UTC)
}

func TestMergeNewestFirst(t *testing.T) {
	alerts := []Item{
		{Kind: KindAlert, ID: "a1", At: at(10)},
		{Kind: KindAlert, ID: "a2", At: at(30)},
	}
	reports := []Item{
		{Kind: KindReport, ID: "r1", At: at(20)},
	}

	got := Merge(0, alerts, reports)

	require.Len(t, got, 3)
	assert.Equal(t, "a2", got[0].ID)
	assert.Equal(t, "r1", got[1].ID)
	assert.Equal(t, "a1", got[2].ID)
}

func TestMergeLimit(t *testing.T) {
	items := []Item{
		{Kind: KindAlert, ID: "a1", At: at(1)},
		{Kind: KindAlert, ID: "a2", At: at(2)},
		{Kind: KindAlert, ID: "a3", At: at(3)},
	}

	got := Merge(2, items)

	require.Len(t, got, 2)
	assert.Equal(t, "a3", got[0].ID)
	assert.Equal(t, "a2", got[1].ID)
}

func TestMergeStableTieBreak(t *testing.T) {
	// Same timestamp: kind sorts first, then id
	same := at(5)
	a := []Item{{Kind: KindReport, ID: "r9", At: same}}
	b := []Item{{Kind: KindAlert, ID: "a9", At: same}}
	c := []Item{{Kind: KindAlert, ID: "a1", At: same}}

	got := Merge(0, a, b, c)

	require.Len(t, got, 3)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a9", got[1].ID)
	assert.Equal(t, "r9", got[2].ID)
}

func TestMergeEmptyStreams(t *testing.T) {
	assert.Empty(t, Merge(10))
	assert.Empty(t, Merge(10, nil, []Item{}))
}
