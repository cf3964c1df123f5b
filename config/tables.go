package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/saytoai/shared/domain"
)

// Tables holds the read-only lookup tables shared by the payment and alert
// code paths. Load them once at process start; they are safe for
// unsynchronized concurrent reads afterwards.
type Tables struct {
	CurrencyLimits map[string]domain.CurrencyLimit `yaml:"currency_limits"`
	Tariffs        map[string]TariffEntry          `yaml:"tariffs"`
	AlertIcons     map[string]string               `yaml:"alert_icons"`
	GenericIcon    string                          `yaml:"generic_icon"`
	ChannelBudgets map[string]int                  `yaml:"channel_budgets"`
}

type TariffEntry struct {
	Price   int64 `yaml:"price"`
	Credits int64 `yaml:"credits"`
}

// DefaultTables returns the compiled-in tables used when no YAML file is
// configured. Values mirror the production tariff sheet.
func DefaultTables() *Tables {
	return &Tables{
		CurrencyLimits: map[string]domain.CurrencyLimit{
			"UZS": {Min: 100_000, Max: 500_000_000_000}, // tiyin
		},
		Tariffs: map[string]TariffEntry{
			"basic":    {Price: 1_000_000, Credits: 50},
			"standard": {Price: 2_500_000, Credits: 150},
			"premium":  {Price: 5_000_000, Credits: 400},
		},
		AlertIcons: map[string]string{
			"payment":  "💳",
			"sms":      "📱",
			"auth":     "🔐",
			"fraud":    "🛡️",
			"critical": "🚨",
		},
		GenericIcon: "📣",
		ChannelBudgets: map[string]int{
			"sms":      160,
			"telegram": 4000,
		},
	}
}

// LoadTables reads tables from a YAML file, or returns the defaults when
// path is empty. Partial files are filled in from the defaults so a
// deployment can override just the tariff sheet.
func LoadTables(path string) (*Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	var loaded Tables
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}
	if len(loaded.CurrencyLimits) > 0 {
		t.CurrencyLimits = loaded.CurrencyLimits
	}
	if len(loaded.Tariffs) > 0 {
		t.Tariffs = loaded.Tariffs
	}
	if len(loaded.AlertIcons) > 0 {
		t.AlertIcons = loaded.AlertIcons
	}
	if loaded.GenericIcon != "" {
		t.GenericIcon = loaded.GenericIcon
	}
	if len(loaded.ChannelBudgets) > 0 {
		t.ChannelBudgets = loaded.ChannelBudgets
	}
	return t, nil
}

// TariffList returns the configured tariffs sorted by ascending price.
func (t *Tables) TariffList() []domain.Tariff {
	out := make([]domain.Tariff, 0, len(t.Tariffs))
	for name, e := range t.Tariffs {
		out = append(out, domain.Tariff{Name: name, Price: e.Price, Credits: e.Credits})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

// Icon resolves a category to its alert icon, falling back to the generic one.
func (t *Tables) Icon(category string) string {
	if icon, ok := t.AlertIcons[category]; ok {
		return icon
	}
	return t.GenericIcon
}
