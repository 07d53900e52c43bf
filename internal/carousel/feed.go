package carousel

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/exclusive-store/server/internal/model"
	logx "github.com/exclusive-store/server/pkg/logger"
)

// DefaultSnapshotTTL bounds how long an untouched cart keeps its merged list.
const DefaultSnapshotTTL = 24 * time.Hour

type snapshot struct {
	fingerprint uint64
	merged      model.ProductList
	expiresAt   time.Time
}

// Feed keeps the merged list of each cart for as long as the cart's product
// list stays the same. A changed list is re-sampled and merged again.
// Snapshots expire ttl after the cart was last observed.
type Feed struct {
	sampler    Sampler
	sampleSize int
	ttl        time.Duration
	now        func() time.Time

	mu    sync.Mutex
	carts map[string]snapshot
}

func NewFeed(sampler Sampler, sampleSize int) *Feed {
	if sampler == nil {
		sampler = NewRandomSampler()
	}
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &Feed{
		sampler:    sampler,
		sampleSize: sampleSize,
		ttl:        DefaultSnapshotTTL,
		now:        time.Now,
		carts:      map[string]snapshot{},
	}
}

// WithTTL sets how long a snapshot survives without being observed.
// A non-positive ttl keeps the default.
func (f *Feed) WithTTL(ttl time.Duration) *Feed {
	if ttl > 0 {
		f.ttl = ttl
	}
	return f
}

// Fingerprint hashes every field of every product in list order.
func Fingerprint(list model.ProductList) uint64 {
	d := xxhash.New()
	enc := json.NewEncoder(d)
	for _, prod := range list {
		// encoding a plain struct into a hash cannot fail
		_ = enc.Encode(prod)
	}
	return d.Sum64()
}

// Observe returns the merged list for base and whether it was recomputed.
// An empty base list is never stored.
func (f *Feed) Observe(cartID string, base model.ProductList) (model.ProductList, bool) {
	fp := Fingerprint(base)

	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	if len(base) == 0 {
		delete(f.carts, cartID)
		return model.ProductList{}, false
	}

	if snap, ok := f.carts[cartID]; ok && snap.fingerprint == fp && now.Before(snap.expiresAt) {
		snap.expiresAt = now.Add(f.ttl)
		f.carts[cartID] = snap
		return snap.merged.Clone(), false
	}

	merged := Merge(MarkNotNew(base), f.sampler.Sample(base, f.sampleSize))
	f.carts[cartID] = snapshot{fingerprint: fp, merged: merged, expiresAt: now.Add(f.ttl)}
	return merged.Clone(), true
}

// Forget drops the cart's snapshot.
func (f *Feed) Forget(cartID string) {
	f.mu.Lock()
	delete(f.carts, cartID)
	f.mu.Unlock()
}

// Sweep drops expired snapshots and returns how many were removed.
func (f *Feed) Sweep() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	removed := 0
	for id, snap := range f.carts {
		if !now.Before(snap.expiresAt) {
			delete(f.carts, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired snapshots every interval until ctx is done.
func (f *Feed) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := f.Sweep(); n > 0 {
				logx.Debug().Int("removed", n).Msg("expired carousel snapshots swept")
			}
		}
	}
}

// Len returns the number of carts with a snapshot.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.carts)
}
