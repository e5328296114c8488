package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is held by reference: two products with the same price are still different items.
type Product struct {
	id    uuid.UUID
	price decimal.Decimal
}

func NewProduct(price decimal.Decimal) *Product {
	return &Product{
		id:    uuid.New(),
		price: price,
	}
}

func ParseProduct(price string) (*Product, error) {
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	return NewProduct(amount), nil
}

func (p *Product) ID() uuid.UUID {
	return p.id
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}
