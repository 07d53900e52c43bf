package model

import "context"

type CartRepository interface {
	// AddProducts appends products to the cart's product list
	AddProducts(ctx context.Context, cartID string, products ...Product) error

	// LoadProducts returns the cart's product list in insertion order
	LoadProducts(ctx context.Context, cartID string) (ProductList, error)

	// ClearCart removes every product from the cart
	ClearCart(ctx context.Context, cartID string) error

	// GetProductCount returns the number of entries in the cart
	GetProductCount(ctx context.Context, cartID string) (int, error)
}
