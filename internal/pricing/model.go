package pricing

import "github.com/shopspring/decimal"

// DefaultCurrency is the currency code attached to every quote and build.
const DefaultCurrency = "USD"

// Selection is a customer's chosen option label per category.
type Selection struct {
	Color   string `json:"color"`
	Seat    string `json:"seat"`
	Bars    string `json:"bars"`
	Exhaust string `json:"exhaust"`
	Tires   string `json:"tires"`
}

// Quote is the validated pricing result. It is always recomputed server-side;
// totals supplied by callers are never trusted.
type Quote struct {
	BasePrice decimal.Decimal
	Addons    map[string]decimal.Decimal
	Total     decimal.Decimal
}

// PriceResponse is the wire shape of a quote.
type PriceResponse struct {
	BasePrice float64            `json:"base_price"`
	Addons    map[string]float64 `json:"addons"`
	Total     float64            `json:"total"`
	Currency  string             `json:"currency"`
}

// Response converts the quote to its wire shape.
func (q *Quote) Response() PriceResponse {
	addons := make(map[string]float64, len(q.Addons))
	for category, delta := range q.Addons {
		addons[category] = delta.InexactFloat64()
	}
	return PriceResponse{
		BasePrice: q.BasePrice.InexactFloat64(),
		Addons:    addons,
		Total:     q.Total.InexactFloat64(),
		Currency:  DefaultCurrency,
	}
}
