package pricing

import (
	"bobber/internal/catalog"

	"github.com/shopspring/decimal"
)

// Engine turns a caller-supplied selection into a validated quote,
// rejecting anything not present in the catalog.
type Engine struct {
	catalog *catalog.Store
}

func NewEngine(store *catalog.Store) *Engine {
	return &Engine{catalog: store}
}

// --------------------------------------------------
// Price a selection (PURE, fail-fast)
// --------------------------------------------------
// Categories resolve in canonical order; the first option missing from the
// catalog aborts with a ValidationError naming it. A zero-delta option is a
// valid stock choice, not a miss.
func (e *Engine) Price(sel Selection) (*Quote, error) {
	chosen := []struct {
		category string
		option   string
	}{
		{catalog.CategoryColor, sel.Color},
		{catalog.CategorySeat, sel.Seat},
		{catalog.CategoryBars, sel.Bars},
		{catalog.CategoryExhaust, sel.Exhaust},
		{catalog.CategoryTires, sel.Tires},
	}

	quote := &Quote{
		BasePrice: e.catalog.BasePrice(),
		Addons:    make(map[string]decimal.Decimal, len(chosen)),
	}

	total := quote.BasePrice
	for _, c := range chosen {
		delta, ok := e.catalog.Delta(c.category, c.option)
		if !ok {
			return nil, &ValidationError{Category: c.category, Value: c.option}
		}
		quote.Addons[c.category] = delta
		total = total.Add(delta)
	}

	quote.Total = total
	return quote, nil
}
