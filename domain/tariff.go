package domain

// Tariff is a named price/credit bracket. Price is in minor units of the
// payment currency; Credits is the service-credit count awarded when a
// payment matches the bracket price exactly.
type Tariff struct {
	Name    string `json:"name" yaml:"name"`
	Price   int64  `json:"price" yaml:"price"`
	Credits int64  `json:"credits" yaml:"credits"`
}
