// Package sms implements the verification-code workflow: session start,
// code checks, retries and the delivery-channel decision. Sessions are
// values; every operation returns an updated copy and the caller persists
// it. The manager holds only read-only configuration, so independent
// sessions can be advanced concurrently without coordination.
package sms

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/saytoai/shared/config"
	"github.com/saytoai/shared/domain"
	"github.com/saytoai/shared/pkg/id"
	"github.com/saytoai/shared/pkg/phone"
)

// Clock supplies the current time. Injected so transitions are pure
// functions of their inputs in tests.
type Clock func() time.Time

// Manager computes verification-session state transitions.
type Manager struct {
	codeLength  int
	codeTTL     time.Duration
	maxAttempts int
	probe       ChannelProbe
	now         Clock
}

// NewManager builds a Manager from runtime configuration. probe may be nil,
// in which case every delivery goes over external SMS.
func NewManager(cfg *config.Config, probe ChannelProbe) *Manager {
	return &Manager{
		codeLength:  cfg.SMSCodeLength,
		codeTTL:     cfg.SMSCodeTTL,
		maxAttempts: cfg.SMSMaxAttempts,
		probe:       probe,
		now:         time.Now,
	}
}

// WithClock replaces the time source. Returns the manager for chaining.
func (m *Manager) WithClock(now Clock) *Manager {
	m.now = now
	return m
}

// Start creates a new PENDING session for the phone number: normalizes it to
// E.164, picks the delivery channel and generates the first code.
func (m *Manager) Start(ctx context.Context, rawPhone string) (domain.VerificationSession, error) {
	normalized, err := phone.NormalizeE164(rawPhone)
	if err != nil {
		return domain.VerificationSession{}, err
	}
	code, err := GenerateCode(m.codeLength)
	if err != nil {
		return domain.VerificationSession{}, err
	}
	now := m.now()
	sess := domain.VerificationSession{
		ID:          id.New(),
		Phone:       normalized,
		Code:        code,
		Delivery:    ChooseDelivery(ctx, m.probe, normalized),
		State:       domain.SessionPending,
		Attempts:    0,
		MaxAttempts: m.maxAttempts,
		CreatedAt:   now,
		ExpiresAt:   now.Add(m.codeTTL),
	}
	slog.Debug("verification session started",
		"session_id", sess.ID,
		"phone", phone.Mask(normalized, 4),
		"delivery", sess.Delivery)
	return sess, nil
}

// Verify checks a submitted code against a PENDING session.
//
// Terminal sessions are rejected unchanged. A session past its expiry moves
// to EXPIRED regardless of the submitted code. A correct code moves the
// session to VERIFIED. An incorrect code consumes one attempt; the attempt
// that reaches the limit moves the session to FAILED.
func (m *Manager) Verify(sess domain.VerificationSession, submitted string) (domain.VerificationSession, error) {
	if sess.State.Terminal() {
		return sess, fmt.Errorf("session %s is %s: %w", sess.ID, sess.State, domain.ErrSessionTerminal)
	}
	if m.now().After(sess.ExpiresAt) {
		sess.State = domain.SessionExpired
		return sess, fmt.Errorf("session %s: %w", sess.ID, domain.ErrSessionExpired)
	}
	if submitted == sess.Code {
		sess.State = domain.SessionVerified
		return sess, nil
	}
	sess.Attempts++
	if sess.Attempts >= sess.MaxAttempts {
		sess.State = domain.SessionFailed
		return sess, fmt.Errorf("session %s: %w", sess.ID, domain.ErrMaxAttempts)
	}
	return sess, fmt.Errorf("session %s: %w", sess.ID, domain.ErrCodeMismatch)
}

// Retry re-issues a code on a PENDING session: the old code is replaced, the
// expiry window re-armed and the delivery channel re-evaluated (a bot user
// who blocked the bot since the last attempt falls back to external SMS).
// The attempt count is kept: only incorrect code submissions consume
// attempts, not re-sends.
func (m *Manager) Retry(ctx context.Context, sess domain.VerificationSession) (domain.VerificationSession, error) {
	if sess.State.Terminal() {
		return sess, fmt.Errorf("session %s is %s: %w", sess.ID, sess.State, domain.ErrSessionTerminal)
	}
	code, err := GenerateCode(m.codeLength)
	if err != nil {
		return sess, err
	}
	sess.Code = code
	sess.ExpiresAt = m.now().Add(m.codeTTL)
	sess.Delivery = ChooseDelivery(ctx, m.probe, sess.Phone)
	slog.Debug("verification code reissued",
		"session_id", sess.ID,
		"attempts", sess.Attempts,
		"delivery", sess.Delivery)
	return sess, nil
}
