package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saytoai/shared/domain"
)

func TestHash_RoundTrip(t *testing.T) {
	h, err := Hash("correct horse battery")
	require.NoError(t, err)
	assert.True(t, Verify(h, "correct horse battery"))
	assert.False(t, Verify(h, "wrong password"))
}

func TestHash_TooShort(t *testing.T) {
	_, err := Hash("short")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestHash_TooLong(t *testing.T) {
	_, err := Hash(strings.Repeat("x", PasswordMaxLength+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCheckPolicy_Bounds(t *testing.T) {
	assert.NoError(t, CheckPolicy(strings.Repeat("a", PasswordMinLength)))
	assert.NoError(t, CheckPolicy(strings.Repeat("a", PasswordMaxLength)))
	assert.Error(t, CheckPolicy(strings.Repeat("a", PasswordMinLength-1)))
}
