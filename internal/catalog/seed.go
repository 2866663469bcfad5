package catalog

import "github.com/shopspring/decimal"

// defaultBasePrice is the price of the stock bobber before any customization.
var defaultBasePrice = decimal.NewFromInt(9800)

// defaultOptions returns the factory option tables. Amounts are deltas on top
// of the base price; the zero-delta entry in each category is the stock choice.
func defaultOptions() map[string]map[string]decimal.Decimal {
	return map[string]map[string]decimal.Decimal{
		CategoryColor: {
			"Matte Black": decimal.Zero,
			"Gunmetal":    decimal.NewFromInt(120),
			"Pearl White": decimal.NewFromInt(220),
			"Crimson":     decimal.NewFromInt(180),
			"Olive Drab":  decimal.NewFromInt(150),
		},
		CategorySeat: {
			"Solo Minimal":   decimal.Zero,
			"Diamond Stitch": decimal.NewFromInt(260),
			"Brown Vintage":  decimal.NewFromInt(180),
		},
		CategoryBars: {
			"Low Drag": decimal.Zero,
			"Clip-ons": decimal.NewFromInt(320),
			"Mini Ape": decimal.NewFromInt(240),
		},
		CategoryExhaust: {
			"Stock":     decimal.Zero,
			"Shorty":    decimal.NewFromInt(420),
			"Slash-Cut": decimal.NewFromInt(520),
		},
		CategoryTires: {
			"Street":     decimal.Zero,
			"Semi-Slick": decimal.NewFromInt(180),
			"Whitewall":  decimal.NewFromInt(260),
		},
	}
}
