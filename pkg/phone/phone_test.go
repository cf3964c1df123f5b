package phone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saytoai/shared/domain"
)

func TestNormalizeE164_StripsFormatting(t *testing.T) {
	got, err := NormalizeE164("+998 90 123-45-67")
	require.NoError(t, err)
	assert.Equal(t, "+998901234567", got)
}

func TestNormalizeE164_LocalNumberAssumesUzbekistan(t *testing.T) {
	got, err := NormalizeE164("90 123 45 67")
	require.NoError(t, err)
	assert.Equal(t, "+998901234567", got)
}

func TestNormalizeE164_ForeignNumberKeepsCountry(t *testing.T) {
	got, err := NormalizeE164("+7 701 123 45 67")
	require.NoError(t, err)
	assert.Equal(t, "+77011234567", got)
}

func TestNormalizeE164_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "+1", "abc", "+99890"} {
		_, err := NormalizeE164(raw)
		require.Error(t, err, "input %q", raw)
		assert.True(t, errors.Is(err, domain.ErrInvalidPhone), "input %q", raw)
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "*********4567", Mask("+998901234567", 4))
	assert.Equal(t, "+998", Mask("+998", 4), "short values pass through")
	assert.Equal(t, "+998901234567", Mask("+998901234567", 0))
}
