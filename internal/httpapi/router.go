package httpapi

import (
	"github.com/gin-gonic/gin"
)

// NewRouter registers HTTP routes and returns the engine with middleware.
func NewRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(WithRequestID(), WithLogging(), gin.Recovery())

	r.GET("/healthz", app.healthHandler)

	r.GET("/products", app.listProductsHandler)
	r.GET("/products/:id", app.getProductHandler)

	carts := r.Group("/carts")
	carts.POST("", app.createCartHandler)
	carts.GET("/:id/products", app.getCartHandler)
	carts.POST("/:id/products", app.addToCartHandler)
	carts.DELETE("/:id", app.clearCartHandler)
	carts.GET("/:id/carousel", app.getCarouselHandler)
	carts.GET("/:id/carousel/navigate", app.navigateCarouselHandler)

	r.POST("/agent/tools/:name", app.runToolHandler)
	return r
}
