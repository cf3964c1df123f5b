// Package payment validates monetary amounts against currency limits and
// converts them into awarded service credits using the tariff table.
package payment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saytoai/shared/config"
	"github.com/saytoai/shared/domain"
)

// Result is the outcome of a successful amount validation.
type Result struct {
	Amount  domain.Money
	Display string // e.g. "5,000,000 UZS"
}

// Validator checks amounts against the configured per-currency limits and
// resolves credits from the tariff table. It is stateless apart from the
// read-only tables and safe for concurrent use.
type Validator struct {
	limits  map[string]domain.CurrencyLimit
	tariffs []domain.Tariff // ascending by price
}

// NewValidator builds a Validator from the loaded configuration tables.
func NewValidator(tables *config.Tables) *Validator {
	return &Validator{
		limits:  tables.CurrencyLimits,
		tariffs: tables.TariffList(),
	}
}

// Validate checks the amount against the limits for its currency and, on
// success, returns a display-formatted result. The stored amount is never
// modified or rounded.
func (v *Validator) Validate(m domain.Money) (Result, error) {
	limit, ok := v.limits[m.Currency]
	if !ok {
		return Result{}, fmt.Errorf("currency %s not configured: %w", m.Currency, domain.ErrUnknownCurrency)
	}
	if m.Amount < limit.Min {
		return Result{}, fmt.Errorf("amount %d below minimum %d: %w", m.Amount, limit.Min, domain.ErrOutOfRange)
	}
	if m.Amount > limit.Max {
		return Result{}, fmt.Errorf("amount %d above maximum %d: %w", m.Amount, limit.Max, domain.ErrOutOfRange)
	}
	return Result{Amount: m, Display: FormatAmount(m)}, nil
}

// CreditsFor resolves the credit count awarded for an amount. An exact tariff
// price match awards that tariff's credits. Amounts between brackets scale at
// the next-lower bracket's per-unit rate, truncated toward zero so a payment
// is never over-credited. Amounts below the lowest bracket have no tariff.
func (v *Validator) CreditsFor(m domain.Money) (int64, error) {
	if len(v.tariffs) == 0 {
		return 0, fmt.Errorf("tariff table empty: %w", domain.ErrNoMatchingTariff)
	}
	if m.Amount < v.tariffs[0].Price {
		return 0, fmt.Errorf("amount %d below lowest tariff %q (%d): %w",
			m.Amount, v.tariffs[0].Name, v.tariffs[0].Price, domain.ErrNoMatchingTariff)
	}
	bracket := v.tariffs[0]
	for _, t := range v.tariffs {
		if t.Price == m.Amount {
			return t.Credits, nil
		}
		if t.Price < m.Amount {
			bracket = t
		}
	}
	if bracket.Credits == 0 {
		return 0, nil
	}
	// Integer math: amount * credits may exceed int64 only for amounts far
	// beyond the configured maximums, so divide first when it would.
	if m.Amount > (1<<62)/bracket.Credits {
		return (m.Amount / bracket.Price) * bracket.Credits, nil
	}
	return m.Amount * bracket.Credits / bracket.Price, nil
}

// Tariff returns the configured tariff by name.
func (v *Validator) Tariff(name string) (domain.Tariff, error) {
	for _, t := range v.tariffs {
		if t.Name == name {
			return t, nil
		}
	}
	return domain.Tariff{}, fmt.Errorf("tariff %q: %w", name, domain.ErrNoMatchingTariff)
}

// FormatAmount renders a minor-unit amount for display: whole currency units
// with thousands separators and the currency code as suffix. UZS amounts are
// shown in sums (100 tiyin = 1 UZS) with a fractional part only when the
// tiyin remainder is non-zero.
func FormatAmount(m domain.Money) string {
	if m.Currency != "UZS" {
		return groupThousands(m.Amount) + " " + m.Currency
	}
	whole := m.Amount / 100
	frac := m.Amount % 100
	if frac < 0 {
		frac = -frac
	}
	if frac == 0 {
		return groupThousands(whole) + " UZS"
	}
	return fmt.Sprintf("%s.%02d UZS", groupThousands(whole), frac)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
