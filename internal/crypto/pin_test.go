package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPINService_HashAndVerify(t *testing.T) {
	svc := NewPINServiceWithCost(bcrypt.MinCost)

	hash, err := svc.Hash("2468")
	require.NoError(t, err)
	assert.NotEqual(t, "2468", hash)

	assert.NoError(t, svc.Verify(hash, "2468"))
	assert.ErrorIs(t, svc.Verify(hash, "1357"), ErrPINMismatch)
}

func TestPINService_InvalidPIN(t *testing.T) {
	svc := NewPINServiceWithCost(bcrypt.MinCost)

	for _, pin := range []string{"", "123", "12a4", "abcd"} {
		_, err := svc.Hash(pin)
		assert.ErrorIs(t, err, ErrInvalidPIN, pin)
	}
}

func TestPINService_NotConfigured(t *testing.T) {
	assert.ErrorIs(t, NewPINService().Verify("", "1234"), ErrPINNotConfigured)
}

func TestPINService_BrokenHash(t *testing.T) {
	err := NewPINService().Verify("$2a$garbage", "1234")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPINMismatch)
}
