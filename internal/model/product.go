package model

import "github.com/shopspring/decimal"

// Product is a storefront catalogue entry. Only ID and IsNew take part in
// merging; every other field is carried through unchanged.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Discount    int             `json:"discount,omitempty"`
	Rating      float64         `json:"rating,omitempty"`
	Reviews     int             `json:"reviews,omitempty"`
	InStock     bool            `json:"in_stock"`
	IsNew       bool            `json:"isNew"`
}

// DiscountedPrice applies the percentage discount to Price.
func (p Product) DiscountedPrice() decimal.Decimal {
	if p.Discount <= 0 {
		return p.Price
	}
	off := p.Price.Mul(decimal.NewFromInt(int64(p.Discount))).Div(decimal.NewFromInt(100))
	return p.Price.Sub(off).Round(2)
}

// ProductList is an ordered sequence of products; ids are not guaranteed unique.
type ProductList []Product

// IDs returns the product ids in list order.
func (l ProductList) IDs() []string {
	ids := make([]string, len(l))
	for i, p := range l {
		ids[i] = p.ID
	}
	return ids
}

// Clone returns a shallow copy that can be modified without touching l.
func (l ProductList) Clone() ProductList {
	if l == nil {
		return nil
	}
	out := make(ProductList, len(l))
	copy(out, l)
	return out
}
