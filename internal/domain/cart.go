package domain

import (
	"slices"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Cart keeps a running total and item count next to the products it holds.
// It is not safe for concurrent use.
type Cart struct {
	products []*Product
	total    decimal.Decimal
	count    int

	logger zerolog.Logger
}

type Option func(*Cart)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cart) {
		c.logger = logger
	}
}

func WithCapacity(n int) Option {
	return func(c *Cart) {
		if n > 0 {
			c.products = make([]*Product, 0, n)
		}
	}
}

func NewCart(opts ...Option) *Cart {
	c := &Cart{
		total:  decimal.Zero,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cart) Total() decimal.Decimal {
	return c.total
}

func (c *Cart) Count() int {
	return c.count
}

// Products returns the held products in insertion order.
func (c *Cart) Products() []*Product {
	result := make([]*Product, len(c.products))
	copy(result, c.products)

	return result
}

func (c *Cart) Add(products ...*Product) {
	for i, p := range products {
		if p == nil {
			c.logger.Warn().Int("position", i).Msg("skipping nil product")
			continue
		}

		c.products = append(c.products, p)
		c.total = c.total.Add(p.price)
		c.count++

		c.logger.Debug().
			Str("product_id", p.id.String()).
			Stringer("price", p.price).
			Stringer("total", c.total).
			Int("count", c.count).
			Msg("product added")
	}
}

// Remove drops the first occurrence of product, matched by pointer.
// Total and count are decreased even when the product is not in the cart.
func (c *Cart) Remove(product *Product) {
	if product == nil {
		c.logger.Warn().Msg("ignoring removal of nil product")
		return
	}

	found := c.removeFirst(product)

	c.total = c.total.Sub(product.price)
	c.count--

	evt := c.logger.Debug()
	if !found {
		evt = c.logger.Warn()
	}

	evt.Str("product_id", product.id.String()).
		Stringer("price", product.price).
		Stringer("total", c.total).
		Int("count", c.count).
		Bool("found", found).
		Msg("product removed")
}

// ApplyDiscount rewrites the current total once; the discount is not kept.
func (c *Cart) ApplyDiscount(discount int, isPercentage bool) {
	before := c.total
	c.total = ApplyDiscount(c.total, discount, isPercentage)

	c.logger.Debug().
		Int("discount", discount).
		Bool("percentage", isPercentage).
		Stringer("before", before).
		Stringer("total", c.total).
		Msg("discount applied")
}

func (c *Cart) removeFirst(product *Product) bool {
	i := slices.Index(c.products, product)
	if i < 0 {
		return false
	}

	c.products = slices.Delete(c.products, i, i+1)

	return true
}
