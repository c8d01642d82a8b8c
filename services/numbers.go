package services

import (
	"math"

	"github.com/shopspring/decimal"
)

// wholeNumber reports d as an int when it has no fractional part. JSON
// clients may send 5 or 5.0 for the same count.
func wholeNumber(d decimal.Decimal) (int, bool) {
	if !d.Equal(d.Truncate(0)) {
		return 0, false
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) || d.LessThan(decimal.NewFromInt(math.MinInt32)) {
		return 0, false
	}
	return int(d.IntPart()), true
}
