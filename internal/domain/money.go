package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func SumPrices(products ...*Product) decimal.Decimal {
	sum := decimal.Zero

	for _, p := range products {
		if p == nil {
			continue
		}
		sum = sum.Add(p.price)
	}

	return sum
}

// ApplyDiscount returns the total after a single discount.
// Non-positive discounts leave the total unchanged; a flat discount may push it below zero.
func ApplyDiscount(total decimal.Decimal, discount int, isPercentage bool) decimal.Decimal {
	if discount <= 0 {
		return total
	}

	amount := decimal.NewFromInt(int64(discount))

	if isPercentage {
		return total.Mul(amount).Div(hundred)
	}

	return total.Sub(amount)
}
