package types

import (
	"github.com/shopspring/decimal"
)

// LineItem is shared by estimates and invoices.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (li *LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

func sumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Amount())
	}
	return total
}

// taxOn rounds to cents, matching how the totals are displayed.
func taxOn(subtotal decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate).Round(2)
}
