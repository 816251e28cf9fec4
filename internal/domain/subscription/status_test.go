package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	s := func(v string) *string { return &v }

	tests := []struct {
		in   *string
		want string
	}{
		{nil, StatusNone},
		{s(""), StatusNone},
		{s("  "), StatusNone},
		{s("active"), StatusActive},
		{s("Active "), StatusActive},
		{s("trial"), StatusTrialing},
		{s("trialing"), StatusTrialing},
		{s("expired"), StatusExpired},
		{s("past_due"), StatusExpired},
		{s("canceled"), StatusCancelled},
		{s("cancelled"), StatusCancelled},
		{s("organization"), "organization"},
		{s("Organization"), "organization"},
		{s("something-new"), "something-new"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStatus(tt.in))
	}
}

func TestIsPremiumLabel(t *testing.T) {
	assert.True(t, IsPremiumLabel("organization"))
	assert.False(t, IsPremiumLabel(StatusActive), "active grants access via the end date, not the label")
	assert.False(t, IsPremiumLabel(StatusNone))
}
