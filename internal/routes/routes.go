package routes

import (
	"github.com/gin-gonic/gin"

	"gromarche_back_end/internal/handlers"
	"gromarche_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(middleware.Session())
	api.Use(middleware.APIRateLimit())

	// Boutique
	api.GET("/shop/products", handlers.GetShopProducts)
	api.GET("/shop/filters", handlers.GetShopFilters)
	api.GET("/shop/resolve", handlers.ResolveShopPath)

	// Catégories
	api.GET("/categories", handlers.GetAllCategories)
	api.GET("/categories/:id/breadcrumb", handlers.GetCategoryBreadcrumb)
	api.GET("/categories/:id/children", handlers.GetCategoryChildren)

	// Produits
	api.GET("/products/:id", handlers.GetProductByID)
	api.GET("/products/sku/:sku", handlers.GetProductBySKU)

	// Panier
	api.GET("/cart", handlers.GetCart)
	api.POST("/cart", middleware.CartRateLimit(), handlers.AddToCart)
	api.PUT("/cart/:productId", handlers.UpdateCartItem)
	api.DELETE("/cart/:productId", handlers.RemoveFromCart)
	api.DELETE("/cart", handlers.ClearCart)
	api.GET("/cart/ws", handlers.CartWebSocket)

	// Liste d'envies
	api.GET("/wishlist", handlers.GetWishlist)
	api.POST("/wishlist", handlers.AddToWishlist)
	api.DELETE("/wishlist/:productId", handlers.RemoveFromWishlist)

	// Commande rapide
	api.POST("/fast-order/parse", handlers.ParseOrder)
	api.POST("/fast-order/parse-ai", middleware.AIParseRateLimit(), handlers.ParseOrderAI)
	api.POST("/fast-order/add-to-cart", middleware.CartRateLimit(), handlers.AddParsedToCart)
	api.GET("/fast-order/template", handlers.DownloadOrderTemplate)
}
