package pricing

import (
	"testing"

	"dinein-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tax, total := Calculate(25, 10, 2)
	assert.Equal(t, 2.5, tax)
	assert.Equal(t, 29.5, total)
}

func TestCalculateZeroSubtotal(t *testing.T) {
	tax, total := Calculate(0, 10, 2)
	assert.Equal(t, 0.0, tax)
	assert.Equal(t, 2.0, total)
}

func TestLineTotal(t *testing.T) {
	// plain item
	assert.Equal(t, 20.0, LineTotal(10, 2, 0, 0))

	// variant modifier and addons both scale with quantity
	assert.Equal(t, 27.0, LineTotal(10, 2, 2.5, 1))
}

func TestOrderTotals(t *testing.T) {
	items := []models.OrderItem{
		{UnitPrice: 10, Quantity: 2},
		{UnitPrice: 5, Quantity: 1},
	}

	totals := OrderTotals(items, 10, 2, 0)
	assert.Equal(t, 25.0, totals.Subtotal)
	assert.Equal(t, 2.5, totals.Tax)
	assert.Equal(t, 29.5, totals.Total)
}

func TestOrderTotalsAfterItemRemoval(t *testing.T) {
	remaining := []models.OrderItem{
		{UnitPrice: 10, Quantity: 2},
	}

	// recomputed from the stored 10% rate, not back-derived
	totals := OrderTotals(remaining, 10, 2, 0)
	assert.Equal(t, 20.0, totals.Subtotal)
	assert.Equal(t, 2.0, totals.Tax)
	assert.Equal(t, 24.0, totals.Total)

	// invariant: total = subtotal + tax + serviceCharge - discount
	assert.Equal(t, totals.Subtotal+totals.Tax+totals.ServiceCharge-totals.Discount, totals.Total)
}

func TestOrderTotalsEmptyOrder(t *testing.T) {
	// removing the last item is allowed; zero totals are accepted
	totals := OrderTotals(nil, 10, 0, 0)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}

func TestOrderTotalsWithDiscount(t *testing.T) {
	items := []models.OrderItem{{UnitPrice: 100, Quantity: 1}}
	totals := OrderTotals(items, 5, 0, 10)
	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, 5.0, totals.Tax)
	assert.Equal(t, 95.0, totals.Total)
}

func TestApply(t *testing.T) {
	var order models.Order
	items := []models.OrderItem{{UnitPrice: 10, Quantity: 1}}
	OrderTotals(items, 10, 1, 0).Apply(&order)

	assert.Equal(t, 10.0, order.Subtotal)
	assert.Equal(t, 1.0, order.Tax)
	assert.Equal(t, 12.0, order.Total)
}
