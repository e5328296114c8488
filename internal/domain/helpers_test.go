package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/shoppingcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func product(price int64) *domain.Product {
	return domain.NewProduct(decimal.NewFromInt(price))
}

func randomProduct() *domain.Product {
	return domain.NewProduct(decimal.NewFromFloat(gofakeit.Price(1, 100)))
}

func randomProducts(n int) []*domain.Product {
	products := make([]*domain.Product, 0, n)
	for range n {
		products = append(products, randomProduct())
	}

	return products
}

func assertDecimal(t *testing.T, expected, actual decimal.Decimal) {
	t.Helper()

	assert.Truef(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}

// products are compared by identity, never by price
func assertProducts(t *testing.T, expected, actual []*domain.Product) {
	t.Helper()

	identity := cmp.Comparer(func(x, y *domain.Product) bool {
		return x == y
	})

	diff := cmp.Diff(expected, actual, identity)
	assert.Empty(t, diff)
}
