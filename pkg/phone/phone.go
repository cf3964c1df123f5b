package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/saytoai/shared/domain"
)

// DefaultRegion is assumed for numbers submitted without a country code.
// Bare 9-digit subscriber numbers from the bot audience are Uzbek.
const DefaultRegion = "UZ"

// NormalizeE164 parses a phone number (with or without formatting
// punctuation) and returns it in E.164 form. Numbers that cannot be parsed
// into a valid country code + subscriber number fail with ErrInvalidPhone.
func NormalizeE164(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty phone: %w", domain.ErrInvalidPhone)
	}
	num, err := phonenumbers.Parse(trimmed, DefaultRegion)
	if err != nil {
		return "", fmt.Errorf("parse phone %q: %w", raw, domain.ErrInvalidPhone)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone %q: %w", raw, domain.ErrInvalidPhone)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// Mask hides all but the last revealLast characters of a phone number for
// logs and user-facing display.
func Mask(number string, revealLast int) string {
	runes := []rune(number)
	if revealLast <= 0 || len(runes) <= revealLast {
		return number
	}
	return strings.Repeat("*", len(runes)-revealLast) + string(runes[len(runes)-revealLast:])
}
