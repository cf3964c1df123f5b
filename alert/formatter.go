// Package alert renders monitoring alerts into a single message bounded by
// a channel's length budget. Output is deterministic for a given input and
// truncation happens only at block boundaries, so multi-byte characters are
// never split.
package alert

import (
	"fmt"
	"strings"
	"time"

	"github.com/saytoai/shared/config"
	"github.com/saytoai/shared/domain"
)

// Placeholders substituted for missing alert fields.
const (
	unknownService = "unknown-service"
	noSummary      = "(no summary)"
	noSeverity     = "info"
)

// truncationMarker is appended whenever at least one alert was omitted.
const truncationMarker = "…"

// Formatter renders alerts using the configured icon table and channel
// budgets. Read-only after construction.
type Formatter struct {
	tables *config.Tables
}

func NewFormatter(tables *config.Tables) *Formatter {
	return &Formatter{tables: tables}
}

// FormatForChannel renders alerts under the named channel's configured
// budget. Unknown channels get the smallest configured budget so output is
// never oversized for its transport.
func (f *Formatter) FormatForChannel(category string, alerts []domain.Alert, channel string) string {
	budget, ok := f.tables.ChannelBudgets[channel]
	if !ok {
		budget = minBudget(f.tables.ChannelBudgets)
	}
	return f.Format(category, alerts, budget)
}

// Format renders a header line followed by one block per alert, keeping the
// result within budget runes. The header is always emitted; whole blocks are
// appended while they fit. When alerts are omitted the output ends with the
// truncation marker; when not even one block fits, only the header and an
// omitted-count line are emitted.
func (f *Formatter) Format(category string, alerts []domain.Alert, budget int) string {
	header := fmt.Sprintf("%s %s alerts (%d)", f.tables.Icon(category), category, len(alerts))
	if budget <= 0 {
		return ""
	}
	if runeLen(header) > budget {
		return truncateRunes(header, budget)
	}

	var b strings.Builder
	b.WriteString(header)
	used := runeLen(header)
	included := 0

	for i, a := range alerts {
		block := formatBlock(a)
		cost := runeLen(block) + 1 // leading newline
		// Reserve room for the marker unless this is the last alert.
		reserve := 0
		if i < len(alerts)-1 {
			reserve = runeLen(truncationMarker) + 1
		}
		if used+cost+reserve > budget {
			break
		}
		b.WriteByte('\n')
		b.WriteString(block)
		used += cost
		included++
	}

	omitted := len(alerts) - included
	if omitted == 0 {
		return b.String()
	}
	if included == 0 {
		line := fmt.Sprintf("%d alerts omitted %s", omitted, truncationMarker)
		if used+runeLen(line)+1 <= budget {
			b.WriteByte('\n')
			b.WriteString(line)
		}
		return b.String()
	}
	b.WriteByte('\n')
	b.WriteString(truncationMarker)
	return b.String()
}

// formatBlock renders one alert. Missing fields degrade to placeholders.
func formatBlock(a domain.Alert) string {
	service := a.Service
	if service == "" {
		service = unknownService
	}
	summary := a.Summary
	if summary == "" {
		summary = noSummary
	}
	severity := a.Severity
	if severity == "" {
		severity = noSeverity
	}
	ts := "--"
	if !a.Timestamp.IsZero() {
		ts = a.Timestamp.UTC().Format(time.DateTime)
	}
	line := fmt.Sprintf("[%s] %s (%s, %s)", service, summary, severity, ts)
	if a.Description != "" {
		line += "\n  " + a.Description
	}
	return line
}

func runeLen(s string) int { return len([]rune(s)) }

func truncateRunes(s string, budget int) string {
	r := []rune(s)
	marker := []rune(truncationMarker)
	if budget <= len(marker) {
		return string(r[:budget])
	}
	return string(r[:budget-len(marker)]) + truncationMarker
}

func minBudget(budgets map[string]int) int {
	min := 0
	for _, b := range budgets {
		if min == 0 || b < min {
			min = b
		}
	}
	return min
}
