package domain

import "time"

// SessionState is the lifecycle state of a verification session.
// PENDING is the only state with outgoing transitions.
type SessionState string

const (
	SessionPending  SessionState = "pending"
	SessionVerified SessionState = "verified"
	SessionExpired  SessionState = "expired"
	SessionFailed   SessionState = "failed"
)

// Terminal reports whether no further transitions are accepted.
func (s SessionState) Terminal() bool {
	return s == SessionVerified || s == SessionExpired || s == SessionFailed
}

// DeliveryMethod is the transport used to deliver a verification code.
type DeliveryMethod string

const (
	// DeliveryInApp is the zero-marginal-cost channel (bot / in-app message).
	DeliveryInApp DeliveryMethod = "in_app"
	// DeliveryExternalSMS is the paid external SMS gateway.
	DeliveryExternalSMS DeliveryMethod = "external_sms"
)

// VerificationSession is one in-flight code verification for a phone number.
// The session is a value: the workflow manager computes transitions and
// returns an updated copy, it never stores sessions itself. Persistence and
// single-writer discipline per session id are the caller's responsibility.
type VerificationSession struct {
	ID          string         `json:"id"`
	Phone       string         `json:"phone"` // E.164
	Code        string         `json:"-"`     // fixed-length numeric, regenerated on retry
	Delivery    DeliveryMethod `json:"delivery"`
	State       SessionState   `json:"state"`
	Attempts    int            `json:"attempts"`
	MaxAttempts int            `json:"max_attempts"`
	CreatedAt   time.Time      `json:"created_at"`
	ExpiresAt   time.Time      `json:"expires_at"`
}

// StartVerificationRequest is the caller-facing input for starting a session.
type StartVerificationRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// VerifyCodeRequest is the caller-facing input for submitting a code.
type VerifyCodeRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Code      string `json:"code" validate:"required,numeric"`
}
