package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so callers can branch with errors.Is without
// depending on message text.
var (
	// Payment validation.
	ErrOutOfRange       = errors.New("amount out of range")
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrNoMatchingTariff = errors.New("no matching tariff")

	// SMS verification.
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrSessionTerminal = errors.New("session already finished")
	ErrSessionExpired  = errors.New("session expired")
	ErrCodeMismatch    = errors.New("verification code mismatch")
	ErrMaxAttempts     = errors.New("max verification attempts reached")

	// Generic input validation.
	ErrBadRequest = errors.New("bad request")
)
