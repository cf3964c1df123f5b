package sms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResendLimiter_HourlyCap(t *testing.T) {
	rl := NewResendLimiter(3, 0)
	phone := "+998901234567"

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow(phone), "send %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow(phone), "4th send within the hour must be denied")
	assert.Positive(t, rl.RetryAfter(phone))
}

func TestResendLimiter_Cooldown(t *testing.T) {
	rl := NewResendLimiter(100, 50*time.Millisecond)
	phone := "+998901234567"

	assert.True(t, rl.Allow(phone))
	assert.False(t, rl.Allow(phone), "second send inside cooldown must be denied")
	assert.Positive(t, rl.RetryAfter(phone))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow(phone), "send after cooldown must be allowed")
}

func TestResendLimiter_PhonesAreIndependent(t *testing.T) {
	rl := NewResendLimiter(1, 0)

	assert.True(t, rl.Allow("+998901234567"))
	assert.False(t, rl.Allow("+998901234567"))
	assert.True(t, rl.Allow("+998907654321"))
}

func TestResendLimiter_RetryAfterZeroWhenFresh(t *testing.T) {
	rl := NewResendLimiter(3, time.Minute)
	assert.Zero(t, rl.RetryAfter("+998901234567"))
}
