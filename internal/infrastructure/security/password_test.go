package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, h.Check("secret1", hash))
	assert.False(t, h.Check("secret2", hash))
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasher(4)

	h1, err := h.Hash("secret1")
	require.NoError(t, err)
	h2, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, h.Check("secret1", h1))
	assert.True(t, h.Check("secret1", h2))
}

func TestBcryptHasher_MalformedHashFailsClosed(t *testing.T) {
	h := NewBcryptHasher(4)

	assert.False(t, h.Check("secret1", ""))
	assert.False(t, h.Check("secret1", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	// out-of-range costs fall back to the bcrypt default instead of failing
	h := NewBcryptHasher(99)
	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.True(t, h.Check("secret1", hash))
}
