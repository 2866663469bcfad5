package catalog

import "github.com/shopspring/decimal"

// Store holds the authoritative set of purchasable options and their price
// deltas. It is seeded once at startup and never mutated afterwards; option
// changes ship as a redeploy, not a runtime write.
type Store struct {
	basePrice decimal.Decimal
	options   map[string]map[string]decimal.Decimal
}

// NewStore builds the catalog with the factory option tables.
func NewStore() *Store {
	return &Store{
		basePrice: defaultBasePrice,
		options:   defaultOptions(),
	}
}

// BasePrice returns the price of the stock build before addons.
func (s *Store) BasePrice() decimal.Decimal {
	return s.basePrice
}

// Categories returns the category names in canonical order.
func (s *Store) Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Delta looks up the price delta for an option within a category. The second
// return reports whether the option exists at all; a stock option with a
// zero delta is present, not missing.
func (s *Store) Delta(category, option string) (decimal.Decimal, bool) {
	opts, ok := s.options[category]
	if !ok {
		return decimal.Decimal{}, false
	}
	delta, ok := opts[option]
	return delta, ok
}

// Options returns a detached copy of the option table with float64 amounts,
// shaped for JSON responses. Mutating the copy does not touch the catalog.
func (s *Store) Options() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(s.options))
	for category, opts := range s.options {
		entry := make(map[string]float64, len(opts))
		for option, delta := range opts {
			entry[option] = delta.InexactFloat64()
		}
		out[category] = entry
	}
	return out
}
