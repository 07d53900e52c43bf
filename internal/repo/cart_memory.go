package repo

import (
	"context"
	"sync"

	"github.com/exclusive-store/server/internal/model"
)

// MemoryCartRepository keeps carts in process memory. Used when Redis is not
// configured; carts are lost on restart.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]model.ProductList
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: map[string]model.ProductList{}}
}

func (r *MemoryCartRepository) AddProducts(ctx context.Context, cartID string, products ...model.Product) error {
	if len(products) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cartID] = append(r.carts[cartID], products...)
	return nil
}

func (r *MemoryCartRepository) LoadProducts(ctx context.Context, cartID string) (model.ProductList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.carts[cartID].Clone()
	if list == nil {
		list = model.ProductList{}
	}
	return list, nil
}

func (r *MemoryCartRepository) ClearCart(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}

func (r *MemoryCartRepository) GetProductCount(ctx context.Context, cartID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts[cartID]), nil
}

var _ model.CartRepository = (*MemoryCartRepository)(nil)
