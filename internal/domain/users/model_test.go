package users

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSerializationHidesCredentials(t *testing.T) {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	sub := "google-sub-123"
	u := User{
		ID:        12,
		Email:     "sana@example.com",
		Password:  &hash,
		GoogleSub: &sub,
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), hash, "bcrypt hash must never serialize")
	assert.NotContains(t, string(raw), sub, "google subject must never serialize")
	assert.Contains(t, string(raw), "sana@example.com")
}
