package carousel

import (
	"context"
	"fmt"

	errx "github.com/exclusive-store/server/internal/core/error"
	"github.com/exclusive-store/server/internal/model"
	logx "github.com/exclusive-store/server/pkg/logger"
)

// Catalog is the part of the catalogue syncer the carousel depends on.
type Catalog interface {
	Status() (model.Status, error)
	FindAll(ids []string) (model.ProductList, error)
}

// Request selects a cart and the page to render at a viewport width.
type Request struct {
	CartID string
	Width  int
	Page   int
}

// Service renders carousels for carts.
type Service struct {
	cfg     model.CarouselConfig
	catalog Catalog
	carts   model.CartRepository
	feed    *Feed
	layout  *Layout
}

func NewService(cfg model.CarouselConfig, catalog Catalog, carts model.CartRepository, feed *Feed, layout *Layout) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart repository is nil")
	}
	if feed == nil {
		feed = NewFeed(nil, cfg.SampleSize)
	}
	if layout == nil {
		var err error
		if layout, err = NewLayoutFromConfig(cfg); err != nil {
			return nil, fmt.Errorf("carousel layout: %w", err)
		}
	}
	return &Service{cfg: cfg, catalog: catalog, carts: carts, feed: feed, layout: layout}, nil
}

// Build renders the requested page of the cart's carousel.
func (s *Service) Build(ctx context.Context, req Request) (*model.Carousel, error) {
	if req.CartID == "" {
		return nil, errx.InvalidInput("cart id is required")
	}
	if req.Width < 0 {
		return nil, errx.InvalidInput("width must not be negative, got %d", req.Width)
	}

	merged, err := s.merged(ctx, req.CartID)
	if err != nil {
		return nil, err
	}
	return s.render(req, merged)
}

// Navigate moves from page in dir and renders the page it lands on.
func (s *Service) Navigate(ctx context.Context, req Request, dir model.Direction) (*model.Carousel, error) {
	if req.CartID == "" {
		return nil, errx.InvalidInput("cart id is required")
	}
	if req.Width < 0 {
		return nil, errx.InvalidInput("width must not be negative, got %d", req.Width)
	}
	merged, err := s.merged(ctx, req.CartID)
	if err != nil {
		return nil, err
	}
	total := s.layout.PageCount(len(merged), req.Width)
	req.Page = s.layout.Navigate(req.Page, total, dir)
	return s.render(req, merged)
}

func (s *Service) merged(ctx context.Context, cartID string) (model.ProductList, error) {
	base, err := s.carts.LoadProducts(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", cartID, err)
	}
	merged, recomputed := s.feed.Observe(cartID, base)
	if recomputed {
		logx.Debug().Str("cart_id", cartID).Int("base", len(base)).Int("merged", len(merged)).Msg("carousel merged")
	}
	return merged, nil
}

func (s *Service) render(req Request, merged model.ProductList) (*model.Carousel, error) {
	status, fetchErr := s.catalog.Status()

	c := &model.Carousel{
		CartID:      req.CartID,
		Title:       s.cfg.Title,
		Heading:     s.cfg.Heading,
		Total:       len(merged),
		ViewAllLink: s.cfg.ViewAllLink,
		ProductIDs:  merged.IDs(),
	}

	if status == model.StatusLoading || len(merged) == 0 {
		c.Status = model.StatusLoading
		return c, nil
	}

	c.Status = model.StatusReady
	if status == model.StatusError {
		c.Status = model.StatusError
		c.Error = s.cfg.ErrorNotice
		logx.Debug().Err(fetchErr).Str("cart_id", req.CartID).Msg("rendering carousel with fetch error")
	}

	pages := s.layout.Paginate(merged, req.Width)
	if req.Page < 0 || req.Page >= len(pages) {
		return nil, errx.InvalidInput("page %d out of range [0,%d)", req.Page, len(pages))
	}
	page := pages[req.Page]
	c.Page = &page
	c.PageCount = len(pages)
	c.PrevPage = s.layout.Navigate(req.Page, len(pages), model.DirectionPrev)
	c.NextPage = s.layout.Navigate(req.Page, len(pages), model.DirectionNext)
	return c, nil
}

// AddToCart resolves ids against the catalogue and appends them to the cart.
func (s *Service) AddToCart(ctx context.Context, cartID string, ids []string) (model.ProductList, error) {
	if cartID == "" {
		return nil, errx.InvalidInput("cart id is required")
	}
	if len(ids) == 0 {
		return nil, errx.InvalidInput("at least one product id is required")
	}
	products, err := s.catalog.FindAll(ids)
	if err != nil {
		return nil, err
	}
	if err := s.carts.AddProducts(ctx, cartID, products...); err != nil {
		return nil, fmt.Errorf("add to cart %s: %w", cartID, err)
	}
	logx.Info().Str("cart_id", cartID).Strs("product_ids", ids).Msg("products added to cart")
	return s.carts.LoadProducts(ctx, cartID)
}

// CartProducts returns the cart's base list.
func (s *Service) CartProducts(ctx context.Context, cartID string) (model.ProductList, error) {
	return s.carts.LoadProducts(ctx, cartID)
}

// ClearCart empties the cart and drops its merged snapshot.
func (s *Service) ClearCart(ctx context.Context, cartID string) error {
	if err := s.carts.ClearCart(ctx, cartID); err != nil {
		return fmt.Errorf("clear cart %s: %w", cartID, err)
	}
	s.feed.Forget(cartID)
	return nil
}
