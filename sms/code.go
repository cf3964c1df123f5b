package sms

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateCode returns a numeric verification code of exactly length digits,
// drawn from crypto/rand so codes cannot be predicted from earlier ones.
// The first digit is never zero, matching how codes are read back over the
// phone to support.
func GenerateCode(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}
	digits := make([]byte, length)
	first, err := rand.Int(rand.Reader, big.NewInt(9))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	digits[0] = byte('1' + first.Int64())
	for i := 1; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
