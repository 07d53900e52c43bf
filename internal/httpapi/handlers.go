package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/exclusive-store/server/internal/carousel"
	errx "github.com/exclusive-store/server/internal/core/error"
	"github.com/exclusive-store/server/internal/model"
)

// CarouselService is what the handlers need from the carousel package.
type CarouselService interface {
	Build(ctx context.Context, req carousel.Request) (*model.Carousel, error)
	Navigate(ctx context.Context, req carousel.Request, dir model.Direction) (*model.Carousel, error)
	AddToCart(ctx context.Context, cartID string, ids []string) (model.ProductList, error)
	CartProducts(ctx context.Context, cartID string) (model.ProductList, error)
	ClearCart(ctx context.Context, cartID string) error
}

// Catalog is the read side of the catalogue syncer.
type Catalog interface {
	Status() (model.Status, error)
	FetchedAt() time.Time
	Products() model.ProductList
	Find(id string) (model.Product, bool)
}

// ToolRunner runs agent tools.
type ToolRunner interface {
	Has(name string) bool
	Run(ctx context.Context, name, arguments string) (string, error)
}

// App bundles the dependencies of the HTTP handlers.
type App struct {
	Carousel CarouselService
	Catalog  Catalog
	Tools    ToolRunner
}

type healthResponse struct {
	Status    string       `json:"status"`
	Catalog   model.Status `json:"catalog"`
	FetchedAt *time.Time   `json:"fetched_at,omitempty"`
}

func (a *App) healthHandler(c *gin.Context) {
	status, _ := a.Catalog.Status()
	resp := healthResponse{Status: "ok", Catalog: status}
	if at := a.Catalog.FetchedAt(); !at.IsZero() {
		resp.FetchedAt = &at
	}
	c.JSON(http.StatusOK, resp)
}

type productsResponse struct {
	Status   model.Status      `json:"status"`
	Total    int               `json:"total"`
	Products model.ProductList `json:"products"`
}

func (a *App) listProductsHandler(c *gin.Context) {
	status, _ := a.Catalog.Status()
	products := a.Catalog.Products()

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filtered := model.ProductList{}
		for _, prod := range products {
			if strings.EqualFold(prod.Category, category) {
				filtered = append(filtered, prod)
			}
		}
		products = filtered
	}
	c.JSON(http.StatusOK, productsResponse{Status: status, Total: len(products), Products: products})
}

func (a *App) getProductHandler(c *gin.Context) {
	id := c.Param("id")
	prod, ok := a.Catalog.Find(id)
	if !ok {
		writeError(c, errx.NotFound("product %q", id))
		return
	}
	c.JSON(http.StatusOK, prod)
}

type cartResponse struct {
	CartID   string            `json:"cart_id"`
	Count    int               `json:"count"`
	Products model.ProductList `json:"products"`
}

func (a *App) createCartHandler(c *gin.Context) {
	c.JSON(http.StatusCreated, cartResponse{CartID: uuid.NewString(), Products: model.ProductList{}})
}

type addToCartRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required,min=1,dive,required"`
}

func (a *App) addToCartHandler(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errx.InvalidInput("%v", err))
		return
	}
	cartID := c.Param("id")
	list, err := a.Carousel.AddToCart(c.Request.Context(), cartID, req.ProductIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse{CartID: cartID, Count: len(list), Products: list})
}

func (a *App) getCartHandler(c *gin.Context) {
	cartID := c.Param("id")
	list, err := a.Carousel.CartProducts(c.Request.Context(), cartID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse{CartID: cartID, Count: len(list), Products: list})
}

func (a *App) clearCartHandler(c *gin.Context) {
	if err := a.Carousel.ClearCart(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type carouselQuery struct {
	Width int    `form:"width"`
	Page  int    `form:"page"`
	Dir   string `form:"dir"`
}

func (a *App) getCarouselHandler(c *gin.Context) {
	var q carouselQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errx.InvalidInput("%v", err))
		return
	}
	view, err := a.Carousel.Build(c.Request.Context(), carousel.Request{CartID: c.Param("id"), Width: q.Width, Page: q.Page})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (a *App) navigateCarouselHandler(c *gin.Context) {
	var q carouselQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errx.InvalidInput("%v", err))
		return
	}
	dir, ok := model.ParseDirection(q.Dir)
	if !ok {
		writeError(c, errx.InvalidInput("dir must be next or prev, got %q", q.Dir))
		return
	}
	view, err := a.Carousel.Navigate(c.Request.Context(), carousel.Request{CartID: c.Param("id"), Width: q.Width, Page: q.Page}, dir)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (a *App) runToolHandler(c *gin.Context) {
	name := c.Param("name")
	if !a.Tools.Has(name) {
		writeError(c, errx.NotFound("tool %q", name))
		return
	}
	args, err := c.GetRawData()
	if err != nil {
		writeError(c, errx.InvalidInput("read body: %v", err))
		return
	}
	out, err := a.Tools.Run(c.Request.Context(), name, string(args))
	if err != nil {
		writeError(c, errx.New(err, http.StatusUnprocessableEntity, "tool call failed"))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(out))
}
