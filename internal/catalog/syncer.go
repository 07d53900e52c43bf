package catalog

import (
	"context"
	"sync"
	"time"

	errx "github.com/exclusive-store/server/internal/core/error"
	"github.com/exclusive-store/server/internal/model"
	logx "github.com/exclusive-store/server/pkg/logger"
)

// Syncer keeps the last good catalogue in memory and refreshes it in the
// background. Until the first fetch completes the status is loading; a failed
// fetch flips it to error but the previous products stay available.
type Syncer struct {
	source   Source
	interval time.Duration

	mu        sync.RWMutex
	status    model.Status
	lastErr   error
	products  model.ProductList
	index     map[string]int
	fetchedAt time.Time
}

func NewSyncer(source Source, interval time.Duration) *Syncer {
	return &Syncer{
		source:   source,
		interval: interval,
		status:   model.StatusLoading,
		products: model.ProductList{},
		index:    map[string]int{},
	}
}

// Refresh fetches the catalogue once.
func (s *Syncer) Refresh(ctx context.Context) error {
	start := time.Now()
	products, err := s.source.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.status = model.StatusError
		s.lastErr = errx.WrapCatalog(err)
		logx.Warn().Err(err).Int("cached_products", len(s.products)).Msg("catalogue refresh failed")
		return s.lastErr
	}

	index := make(map[string]int, len(products))
	for i, prod := range products {
		if _, dup := index[prod.ID]; !dup {
			index[prod.ID] = i
		}
	}
	s.products = products
	s.index = index
	s.status = model.StatusReady
	s.lastErr = nil
	s.fetchedAt = time.Now()
	logx.Debug().Int("products", len(products)).Dur("took", time.Since(start)).Msg("catalogue refreshed")
	return nil
}

// Run refreshes immediately and then on every interval until ctx is done.
func (s *Syncer) Run(ctx context.Context) {
	_ = s.Refresh(ctx)
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}

// Status returns the fetch state and the error of the last failed fetch.
func (s *Syncer) Status() (model.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.lastErr
}

// FetchedAt is the time of the last successful fetch.
func (s *Syncer) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Products returns a copy of the last good catalogue.
func (s *Syncer) Products() model.ProductList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.Clone()
}

// Find looks a product up by id.
func (s *Syncer) Find(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return model.Product{}, false
	}
	return s.products[i], true
}

// FindAll resolves ids in order and fails on the first unknown id.
func (s *Syncer) FindAll(ids []string) (model.ProductList, error) {
	out := make(model.ProductList, 0, len(ids))
	for _, id := range ids {
		prod, ok := s.Find(id)
		if !ok {
			return nil, errx.NotFound("product %q", id)
		}
		out = append(out, prod)
	}
	return out, nil
}
