package catalog

// Customization categories. A selection names exactly one option per
// category, and validation walks them in this order.
const (
	CategoryColor   = "color"
	CategorySeat    = "seat"
	CategoryBars    = "bars"
	CategoryExhaust = "exhaust"
	CategoryTires   = "tires"
)

// categories is the canonical category order used for validation and pricing.
var categories = []string{
	CategoryColor,
	CategorySeat,
	CategoryBars,
	CategoryExhaust,
	CategoryTires,
}
