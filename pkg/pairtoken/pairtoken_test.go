package pairtoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndResolve(t *testing.T) {
	codec := NewCodec("test-secret", false)

	token, err := codec.Sign(42, 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	pairID, eventID, err := codec.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), pairID)
	assert.Equal(t, uint(7), eventID)
}

func TestResolveWrongSecret(t *testing.T) {
	signer := NewCodec("secret-a", false)
	verifier := NewCodec("secret-b", false)

	token, err := signer.Sign(42, 7)
	require.NoError(t, err)

	_, _, err = verifier.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLegacyFallback(t *testing.T) {
	legacy := NewCodec("test-secret", true)
	strict := NewCodec("test-secret", false)

	pairID, eventID, err := legacy.Resolve("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), pairID)
	assert.Equal(t, uint(0), eventID)

	_, _, err = strict.Resolve("42")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveGarbage(t *testing.T) {
	codec := NewCodec("test-secret", true)

	for _, raw := range []string{"", "not-a-token", "0", "-5"} {
		_, _, err := codec.Resolve(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "raw=%q", raw)
	}
}
