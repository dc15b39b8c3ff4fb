package cart

import "github.com/shopspring/decimal"

// Shipping is free from this subtotal up; below it a flat fee applies.
const (
	freeShippingThreshold = 500
	flatShippingFee       = 50
)

var taxRate = decimal.NewFromFloat(0.08)

type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Quote derives the checkout breakdown from a cart subtotal.
func Quote(subtotal float64) Pricing {
	sub := decimal.NewFromFloat(subtotal)

	shipping := decimal.NewFromInt(flatShippingFee)
	if subtotal >= freeShippingThreshold {
		shipping = decimal.Zero
	}
	tax := sub.Mul(taxRate)
	total := sub.Add(shipping).Add(tax)

	shippingF, _ := shipping.Float64()
	taxF, _ := tax.Float64()
	totalF, _ := total.Float64()
	return Pricing{
		Subtotal: subtotal,
		Shipping: shippingF,
		Tax:      taxF,
		Total:    totalF,
	}
}
