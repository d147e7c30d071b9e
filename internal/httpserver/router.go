package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// buildRouter wires routes for the storefront API.
func buildRouter(log zerolog.Logger, db *pgxpool.Pool, deps Deps, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.AllowCredentials = false
	router.Use(cors.New(corsCfg))

	if opts.RateLimitPerSec > 0 {
		router.Use(newRateLimiter(opts.RateLimitPerSec, opts.RateLimitBurst).middleware())
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.GET("/products", listProductsHandler(deps.Catalog))
	api.GET("/products/:id", getProductHandler(deps.Catalog))
	api.POST("/products", adminRequired(deps.Auth), createProductHandler(deps.Catalog))
	api.PUT("/products/:id", adminRequired(deps.Auth), updateProductHandler(deps.Catalog))

	api.POST("/auth/register", registerHandler(deps.Auth))
	api.POST("/auth/login", loginHandler(deps.Auth))
	api.GET("/auth/me", authRequired(deps.Auth), meHandler(deps.Auth))

	api.POST("/chatbot/message", chatHandler(deps.Chat))

	withCart := api.Group("", cartSession(deps.Carts, opts.SessionTTL))
	withCart.GET("/cart", getCartHandler)
	withCart.POST("/cart/items", addCartItemHandler(deps.Catalog))
	withCart.PUT("/cart/items/:productId", updateCartItemHandler)
	withCart.DELETE("/cart/items/:productId", removeCartItemHandler)
	withCart.DELETE("/cart", clearCartHandler)
	withCart.POST("/orders", createOrderHandler(deps.Orders))

	api.GET("/admin/orders", adminRequired(deps.Auth), listOrdersHandler(deps.Orders))
	api.POST("/admin/uploads", adminRequired(deps.Auth), uploadHandler(deps.Uploads, opts.MaxUploadBytes))

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
