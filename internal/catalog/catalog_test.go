package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	errx "github.com/exclusive-store/server/internal/core/error"
	"github.com/exclusive-store/server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_FetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"p-1","name":"Gamepad","price":160,"isNew":true},{"id":"p-2","name":"Keyboard","price":"1160.50"}]`))
	}))
	defer srv.Close()

	list, err := NewHTTPSource(srv.URL, time.Second).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p-1", list[0].ID)
	assert.True(t, list[0].IsNew)
	assert.Equal(t, "1160.5", list[1].Price.String())
}

func TestHTTPSource_WrappedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(` {"products":[{"id":"p-9","name":"Chair","price":400}]}`))
	}))
	defer srv.Close()

	list, err := NewHTTPSource(srv.URL, time.Second).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"p-9"}, list.IDs())
}

func TestHTTPSource_Errors(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	_, err := NewHTTPSource(failing.URL, time.Second).FetchAll(context.Background())
	assert.ErrorContains(t, err, "unexpected status 503")

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer garbage.Close()

	_, err = NewHTTPSource(garbage.URL, time.Second).FetchAll(context.Background())
	assert.ErrorContains(t, err, "decode catalogue")
}

func TestStaticSource_ReturnsCopy(t *testing.T) {
	src := NewStaticSource(DemoProducts)

	list, err := src.FetchAll(context.Background())
	require.NoError(t, err)
	list[0].Name = "changed"
	assert.NotEqual(t, "changed", DemoProducts[0].Name)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.FetchAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type flakySource struct {
	fail     atomic.Bool
	products model.ProductList
}

func (f *flakySource) FetchAll(ctx context.Context) (model.ProductList, error) {
	if f.fail.Load() {
		return nil, errors.New("upstream down")
	}
	return f.products.Clone(), nil
}

func TestSyncer_StatusTransitions(t *testing.T) {
	src := &flakySource{products: DemoProducts[:3]}
	s := NewSyncer(src, 0)

	status, err := s.Status()
	assert.Equal(t, model.StatusLoading, status)
	assert.NoError(t, err)
	assert.Empty(t, s.Products())

	require.NoError(t, s.Refresh(context.Background()))
	status, _ = s.Status()
	assert.Equal(t, model.StatusReady, status)
	assert.Len(t, s.Products(), 3)
	assert.False(t, s.FetchedAt().IsZero())

	src.fail.Store(true)
	err = s.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, errx.StatusOf(err))

	status, lastErr := s.Status()
	assert.Equal(t, model.StatusError, status)
	assert.Error(t, lastErr)
	assert.Len(t, s.Products(), 3, "previous catalogue stays available")

	src.fail.Store(false)
	require.NoError(t, s.Refresh(context.Background()))
	status, lastErr = s.Status()
	assert.Equal(t, model.StatusReady, status)
	assert.NoError(t, lastErr)
}

func TestSyncer_Find(t *testing.T) {
	s := NewSyncer(NewStaticSource(DemoProducts), 0)
	require.NoError(t, s.Refresh(context.Background()))

	prod, ok := s.Find("prod-005")
	require.True(t, ok)
	assert.Equal(t, "Kids Electric Car", prod.Name)

	_, ok = s.Find("missing")
	assert.False(t, ok)

	list, err := s.FindAll([]string{"prod-002", "prod-001"})
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-002", "prod-001"}, list.IDs())

	_, err = s.FindAll([]string{"prod-001", "nope"})
	assert.Equal(t, http.StatusNotFound, errx.StatusOf(err))
}

func TestSyncer_RunStopsOnCancel(t *testing.T) {
	s := NewSyncer(NewStaticSource(DemoProducts), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		status, _ := s.Status()
		return status == model.StatusReady
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("syncer did not stop")
	}
}

func TestDemoProducts_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, prod := range DemoProducts {
		assert.False(t, seen[prod.ID])
		seen[prod.ID] = true
		assert.True(t, prod.Price.IsPositive())
	}
}
