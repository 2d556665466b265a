package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := []*LineItem{
		{Title: "Shirt", Quantity: 2, UnitPrice: 1500, DiscountAmount: 300, TaxAmount: 270},
		{Title: "Mug", Quantity: 1, UnitPrice: 900, TaxAmount: 90},
	}
	shippingMethods := []*ShippingMethod{
		{Name: "Standard", Price: 500},
	}

	totals := ComputeTotals(items, shippingMethods)

	assert.Equal(t, int64(3900), totals.Subtotal)
	assert.Equal(t, int64(300), totals.DiscountTotal)
	assert.Equal(t, int64(360), totals.TaxTotal)
	assert.Equal(t, int64(500), totals.ShippingTotal)
	assert.Equal(t, int64(4460), totals.Total)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil, nil)

	assert.Equal(t, &OrderEditTotals{}, totals)
}

func TestOrderEdit_DecorateTotals_NoOrderLoaded(t *testing.T) {
	edit := &OrderEdit{
		Items: []*LineItem{{Quantity: 3, UnitPrice: 100}},
	}

	edit.DecorateTotals()

	assert.Equal(t, int64(300), edit.Totals.Subtotal)
	assert.Equal(t, int64(0), edit.Totals.ShippingTotal)
	assert.Equal(t, int64(300), edit.Totals.Total)
}

func TestOrderEdit_Confirmable(t *testing.T) {
	cases := []struct {
		status OrderEditStatus
		want   bool
	}{
		{OrderEditStatusCreated, true},
		{OrderEditStatusRequested, true},
		{OrderEditStatusConfirmed, false},
		{OrderEditStatusDeclined, false},
		{OrderEditStatusCanceled, false},
	}

	for _, tc := range cases {
		edit := &OrderEdit{Status: tc.status}
		assert.Equal(t, tc.want, edit.Confirmable(), "status %s", tc.status)
	}
}
