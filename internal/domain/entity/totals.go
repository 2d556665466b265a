package entity

// OrderEditTotals are the monetary aggregates of an order edit's current
// line items. They are recomputed on every read that exposes them; stored
// totals would drift the moment line items change.
type OrderEditTotals struct {
	Subtotal      int64 `json:"subtotal"`
	DiscountTotal int64 `json:"discount_total"`
	TaxTotal      int64 `json:"tax_total"`
	ShippingTotal int64 `json:"shipping_total"`
	Total         int64 `json:"total"`
}

// ComputeTotals derives the aggregates from a line-item set and the parent
// order's shipping methods. All amounts are minor currency units.
func ComputeTotals(items []*LineItem, shippingMethods []*ShippingMethod) *OrderEditTotals {
	totals := &OrderEditTotals{}
	for _, item := range items {
		totals.Subtotal += item.UnitPrice * item.Quantity
		totals.DiscountTotal += item.DiscountAmount
		totals.TaxTotal += item.TaxAmount
	}
	for _, method := range shippingMethods {
		totals.ShippingTotal += method.Price
	}
	totals.Total = totals.Subtotal - totals.DiscountTotal + totals.TaxTotal + totals.ShippingTotal

	return totals
}

// DecorateTotals recomputes and attaches totals to the edit from its current
// items and the parent order's shipping methods.
func (oe *OrderEdit) DecorateTotals() {
	var shippingMethods []*ShippingMethod
	if oe.Order != nil {
		shippingMethods = oe.Order.ShippingMethods
	}
	oe.Totals = ComputeTotals(oe.Items, shippingMethods)
}
