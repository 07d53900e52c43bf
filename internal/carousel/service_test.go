package carousel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	errx "github.com/exclusive-store/server/internal/core/error"
	"github.com/exclusive-store/server/internal/model"
	"github.com/exclusive-store/server/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	status   model.Status
	err      error
	products model.ProductList
}

func (f *fakeCatalog) Status() (model.Status, error) { return f.status, f.err }

func (f *fakeCatalog) FindAll(ids []string) (model.ProductList, error) {
	var out model.ProductList
	for _, id := range ids {
		found := false
		for _, prod := range f.products {
			if prod.ID == id {
				out = append(out, prod)
				found = true
				break
			}
		}
		if !found {
			return nil, errx.NotFound("product %q", id)
		}
	}
	return out, nil
}

type failingCarts struct {
	model.CartRepository
}

func (failingCarts) LoadProducts(ctx context.Context, cartID string) (model.ProductList, error) {
	return nil, errx.WrapRedis(errors.New("connection refused"))
}

func testConfig() model.CarouselConfig {
	return model.CarouselConfig{
		SampleSize:  DefaultSampleSize,
		Rows:        2,
		Breakpoints: "0:1,768:2,1024:3,1280:4",
		Loop:        true,
		Title:       "Our Products",
		Heading:     "Explore Our Products",
		ViewAllLink: "/products",
		ErrorNotice: "Something Wrong happened, Please Try again Later ...",
	}
}

func newTestService(t *testing.T, cat *fakeCatalog) (*Service, *repo.MemoryCartRepository) {
	t.Helper()
	carts := repo.NewMemoryCartRepository()
	svc, err := NewService(testConfig(), cat, carts, NewFeed(NewSeededSampler(1), DefaultSampleSize), nil)
	require.NoError(t, err)
	return svc, carts
}

func TestService_LoadingWhileFetching(t *testing.T) {
	cat := &fakeCatalog{status: model.StatusLoading, products: catalogOf(5)}
	svc, carts := newTestService(t, cat)
	require.NoError(t, carts.AddProducts(context.Background(), "c", catalogOf(5)...))

	c, err := svc.Build(context.Background(), Request{CartID: "c", Width: 1280})
	require.NoError(t, err)
	assert.Equal(t, model.StatusLoading, c.Status)
	assert.Nil(t, c.Page)
}

func TestService_LoadingWhenCartEmpty(t *testing.T) {
	svc, _ := newTestService(t, &fakeCatalog{status: model.StatusReady})

	c, err := svc.Build(context.Background(), Request{CartID: "empty", Width: 1280})
	require.NoError(t, err)
	assert.Equal(t, model.StatusLoading, c.Status)
	assert.Zero(t, c.Total)
}

func TestService_Ready(t *testing.T) {
	cat := &fakeCatalog{status: model.StatusReady, products: catalogOf(20)}
	svc, carts := newTestService(t, cat)
	require.NoError(t, carts.AddProducts(context.Background(), "c", catalogOf(20)...))

	c, err := svc.Build(context.Background(), Request{CartID: "c", Width: 1280})
	require.NoError(t, err)

	assert.Equal(t, model.StatusReady, c.Status)
	assert.Empty(t, c.Error)
	assert.Equal(t, "Our Products", c.Title)
	assert.Equal(t, "Explore Our Products", c.Heading)
	assert.Equal(t, "/products", c.ViewAllLink)
	assert.Equal(t, 20, c.Total, "sample is drawn from the cart so no new ids appear")
	assert.Equal(t, 3, c.PageCount) // 4 columns x 2 rows
	require.NotNil(t, c.Page)
	assert.Len(t, c.Page.Items(), 8)
	assert.Equal(t, 2, c.PrevPage)
	assert.Equal(t, 1, c.NextPage)

	newCount := 0
	for _, page := range []int{0, 1, 2} {
		pc, err := svc.Build(context.Background(), Request{CartID: "c", Width: 1280, Page: page})
		require.NoError(t, err)
		for _, prod := range pc.Page.Items() {
			if prod.IsNew {
				newCount++
			}
		}
	}
	assert.LessOrEqual(t, newCount, DefaultSampleSize)
}

func TestService_ErrorRendersAlongsideContent(t *testing.T) {
	cat := &fakeCatalog{status: model.StatusError, err: errors.New("upstream down")}
	svc, carts := newTestService(t, cat)
	require.NoError(t, carts.AddProducts(context.Background(), "c", catalogOf(3)...))

	c, err := svc.Build(context.Background(), Request{CartID: "c", Width: 500})
	require.NoError(t, err)

	assert.Equal(t, model.StatusError, c.Status)
	assert.Equal(t, "Something Wrong happened, Please Try again Later ...", c.Error)
	require.NotNil(t, c.Page)
	assert.Len(t, c.Page.Items(), 2)
	assert.Equal(t, 2, c.PageCount)
}

func TestService_StableAcrossRequests(t *testing.T) {
	svc, carts := newTestService(t, &fakeCatalog{status: model.StatusReady})
	require.NoError(t, carts.AddProducts(context.Background(), "c", catalogOf(15)...))

	first, err := svc.Build(context.Background(), Request{CartID: "c"})
	require.NoError(t, err)
	second, err := svc.Build(context.Background(), Request{CartID: "c"})
	require.NoError(t, err)
	assert.Equal(t, first.ProductIDs, second.ProductIDs)
}

func TestService_InvalidRequests(t *testing.T) {
	svc, carts := newTestService(t, &fakeCatalog{status: model.StatusReady})
	require.NoError(t, carts.AddProducts(context.Background(), "c", catalogOf(3)...))

	_, err := svc.Build(context.Background(), Request{})
	assert.Equal(t, http.StatusBadRequest, errx.StatusOf(err))

	_, err = svc.Build(context.Background(), Request{CartID: "c", Width: -1})
	assert.Equal(t, http.StatusBadRequest, errx.StatusOf(err))

	_, err = svc.Build(context.Background(), Request{CartID: "c", Page: 5})
	assert.Equal(t, http.StatusBadRequest, errx.StatusOf(err))
}

func TestService_RepositoryFailure(t *testing.T) {
	svc, err := NewService(testConfig(), &fakeCatalog{status: model.StatusReady}, failingCarts{}, nil, nil)
	require.NoError(t, err)

	_, err = svc.Build(context.Background(), Request{CartID: "c"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, errx.StatusOf(err))
}

func TestService_UnknownCartsHoldNoSnapshots(t *testing.T) {
	svc, _ := newTestService(t, &fakeCatalog{status: model.StatusReady})

	for i := range 500 {
		c, err := svc.Build(context.Background(), Request{CartID: fmt.Sprintf("ghost-%d", i)})
		require.NoError(t, err)
		assert.Equal(t, model.StatusLoading, c.Status)
	}
	assert.Zero(t, svc.feed.Len())
}

func TestService_Navigate(t *testing.T) {
	svc, carts := newTestService(t, &fakeCatalog{status: model.StatusReady})
	require.NoError(t, carts.AddProducts(context.Background(), "c", catalogOf(6)...))

	// 1 column x 2 rows -> 3 pages
	c, err := svc.Navigate(context.Background(), Request{CartID: "c", Page: 2}, model.DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Page.Index)

	c, err = svc.Navigate(context.Background(), Request{CartID: "c", Page: 0}, model.DirectionPrev)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Page.Index)

	_, err = svc.Navigate(context.Background(), Request{CartID: "c", Width: -1}, model.DirectionNext)
	assert.Equal(t, http.StatusBadRequest, errx.StatusOf(err))
}

func TestService_CartLifecycle(t *testing.T) {
	cat := &fakeCatalog{status: model.StatusReady, products: catalogOf(4)}
	svc, _ := newTestService(t, cat)
	ctx := context.Background()

	list, err := svc.AddToCart(ctx, "c", []string{"prod-002", "prod-004"})
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-002", "prod-004"}, list.IDs())

	_, err = svc.AddToCart(ctx, "c", []string{"missing"})
	assert.Equal(t, http.StatusNotFound, errx.StatusOf(err))

	_, err = svc.AddToCart(ctx, "c", nil)
	assert.Equal(t, http.StatusBadRequest, errx.StatusOf(err))

	_, err = svc.Build(ctx, Request{CartID: "c"})
	require.NoError(t, err)
	assert.Equal(t, 1, svc.feed.Len())

	require.NoError(t, svc.ClearCart(ctx, "c"))
	assert.Zero(t, svc.feed.Len())
	list, err = svc.CartProducts(ctx, "c")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(testConfig(), nil, repo.NewMemoryCartRepository(), nil, nil)
	assert.Error(t, err)

	_, err = NewService(testConfig(), &fakeCatalog{}, nil, nil, nil)
	assert.Error(t, err)

	cfg := testConfig()
	cfg.Breakpoints = "oops"
	_, err = NewService(cfg, &fakeCatalog{}, repo.NewMemoryCartRepository(), nil, nil)
	assert.Error(t, err)
}
