package domain

// Money is a monetary value in the smallest indivisible unit of its
// currency (tiyin for UZS). Amounts stay integers end to end; display
// formatting never touches the stored value.
type Money struct {
	Amount   int64  `json:"amount" yaml:"amount"`
	Currency string `json:"currency" yaml:"currency"`
}

// CurrencyLimit is the allowed payment range for a currency, in minor units.
type CurrencyLimit struct {
	Min int64 `json:"min" yaml:"min"`
	Max int64 `json:"max" yaml:"max"`
}
