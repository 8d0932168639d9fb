package domain

import "github.com/shopspring/decimal"

const (
	MinDiscount = 1
	MaxDiscount = 90
)

var hundred = decimal.NewFromInt(100)

// DiscountedPrice returns price minus discount percent, rounding the discount
// amount half up to whole currency units.
func DiscountedPrice(price int64, discount int) int64 {
	if discount <= 0 {
		return price
	}
	off := decimal.NewFromInt(price).
		Mul(decimal.NewFromInt(int64(discount))).
		Div(hundred).
		Round(0)
	return price - off.IntPart()
}

// EffectivePrice is the display price of the item.
func (m MenuItem) EffectivePrice() int64 {
	if m.Promotion == nil {
		return m.Price
	}
	return DiscountedPrice(m.Price, m.Promotion.Discount)
}

func (m MenuItem) View() MenuView {
	return MenuView{MenuItem: m, EffectivePrice: m.EffectivePrice()}
}
