// Package user carries profile utilities shared by the backend and the bot:
// username normalization, display names, onboarding flow resolution and
// masking of sensitive values for logs.
package user

import (
	"regexp"
	"strings"

	"github.com/saytoai/shared/domain"
	"github.com/saytoai/shared/pkg/phone"
	"github.com/saytoai/shared/pkg/validate"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
)

var usernameStrip = regexp.MustCompile(`[^\w.]`)

// SanitizeUsername lowercases, trims and strips a raw username down to word
// characters, dots and underscores. Returns "" when the result is shorter
// than the minimum; longer results are cut to the maximum.
func SanitizeUsername(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = usernameStrip.ReplaceAllString(s, "")
	if len(s) < MinUsernameLength {
		return ""
	}
	if len(s) > MaxUsernameLength {
		s = s[:MaxUsernameLength]
	}
	return s
}

// DisplayName picks the best available human-readable name for a user:
// full name, then first or last name, then @username, then masked phone,
// then the user id.
func DisplayName(u domain.User) string {
	first := strings.TrimSpace(u.FirstName)
	last := strings.TrimSpace(u.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}
	if name := strings.TrimSpace(u.Username); name != "" {
		return "@" + name
	}
	if u.Phone != nil && strings.TrimSpace(*u.Phone) != "" {
		return phone.Mask(strings.TrimSpace(*u.Phone), 4)
	}
	if u.UserID != "" {
		return "User " + u.UserID
	}
	return "Unknown User"
}

// Onboarding steps returned by FlowState, in order.
const (
	StepCreateUser     = "create_user"
	StepSelectLanguage = "select_language"
	StepSelectRole     = "select_role"
	StepShareContact   = "share_contact"
	StepComplete       = "complete"
)

// FlowState resolves the next onboarding step a user has to complete.
func FlowState(u *domain.User) string {
	switch {
	case u == nil || u.UserID == "":
		return StepCreateUser
	case u.Language == "":
		return StepSelectLanguage
	case u.Role == "":
		return StepSelectRole
	case !u.ContactShared:
		return StepShareContact
	}
	return StepComplete
}

// ValidateCreate checks a create-user request against its validate tags.
func ValidateCreate(req domain.CreateUserRequest) error {
	return validate.Struct(req)
}

// ValidateUpdate checks an update-user request against its validate tags.
func ValidateUpdate(req domain.UpdateUserRequest) error {
	return validate.Struct(req)
}
