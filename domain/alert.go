package domain

import "time"

// Alert is one monitoring record rendered by the alert formatter.
// Fields may be empty; the formatter substitutes placeholders instead of
// failing the whole call.
type Alert struct {
	Service     string    `json:"service"`
	Summary     string    `json:"summary"`
	Severity    string    `json:"severity"` // low | medium | high | critical
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}
