package pricing

import "dinein-api/models"

// Calculate applies a percentage tax rate and a flat service charge to a
// subtotal. Pure; malformed input is the caller's problem.
func Calculate(subtotal, taxRatePct, serviceCharge float64) (tax, total float64) {
	tax = subtotal * taxRatePct / 100
	total = subtotal + tax + serviceCharge
	return tax, total
}

// LineTotal prices one order line:
// unit price, variant modifier and addons all scale with quantity.
func LineTotal(unitPrice float64, quantity int, variantModifier, addonsPerUnit float64) float64 {
	q := float64(quantity)
	return unitPrice*q + variantModifier*q + addonsPerUnit*q
}

// Totals holds every derived pricing field of an order.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"service_charge"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
}

// OrderTotals recomputes an order's derived fields from its line items and
// the tax rate stored on the order. Used at creation and after any item
// mutation so the total invariant holds:
// total = subtotal + tax + serviceCharge - discount.
func OrderTotals(items []models.OrderItem, taxRatePct, serviceCharge, discount float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += LineTotal(it.UnitPrice, it.Quantity, it.VariantModifier, it.AddonsPrice)
	}
	tax, total := Calculate(subtotal, taxRatePct, serviceCharge)
	return Totals{
		Subtotal:      subtotal,
		Tax:           tax,
		ServiceCharge: serviceCharge,
		Discount:      discount,
		Total:         total - discount,
	}
}

// Apply writes t back onto an order.
func (t Totals) Apply(o *models.Order) {
	o.Subtotal = t.Subtotal
	o.Tax = t.Tax
	o.ServiceCharge = t.ServiceCharge
	o.Discount = t.Discount
	o.Total = t.Total
}
