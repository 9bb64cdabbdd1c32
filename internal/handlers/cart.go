package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gromarche_back_end/internal/cart"
	"gromarche_back_end/internal/catalog"
	"gromarche_back_end/internal/database"
	"gromarche_back_end/internal/models"
)

const cartTTL = 30 * 24 * time.Hour

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// loadCartItems lit le panier de la session depuis Redis (vide si absent)
func loadCartItems(ctx context.Context, sessionID string) []models.CartItem {
	data, err := database.Redis.Get(ctx, cartKey(sessionID)).Result()
	if err != nil || data == "" {
		return nil
	}

	var items []models.CartItem
	if json.Unmarshal([]byte(data), &items) != nil {
		return nil
	}
	return items
}

// saveCartItems écrit le panier et notifie les connexions websocket
func saveCartItems(ctx context.Context, sessionID string, items []models.CartItem) {
	data, _ := json.Marshal(items)
	database.Redis.Set(ctx, cartKey(sessionID), data, cartTTL)
	database.Redis.Publish(ctx, cartKey(sessionID), "updated")
}

// GetCart retourne le panier de la session avec ses totaux
func GetCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	ctx := context.Background()

	items := loadCartItems(ctx, sessionID)
	if items == nil {
		items = []models.CartItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"totals": cart.Totals(items),
	})
}

//
// 🟢 POST /api/cart
//
func AddToCart(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product := catalog.Current.FindProductByID(input.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	ctx := context.Background()
	items := loadCartItems(ctx, sessionID)

	items, err := cart.AddItem(items, *product, input.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	saveCartItems(ctx, sessionID, items)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   items,
		"totals":  cart.Totals(items),
	})
}

//
// 🔵 PUT /api/cart/:productId
//
func UpdateCartItem(c *gin.Context) {
	sessionID := c.GetString("session_id")
	productID := c.Param("productId")

	var input struct {
		Quantity int `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := context.Background()
	items := loadCartItems(ctx, sessionID)

	items, err := cart.UpdateQuantity(items, productID, input.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saveCartItems(ctx, sessionID, items)

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"totals": cart.Totals(items),
	})
}

//
// ❌ DELETE /api/cart/:productId
//
func RemoveFromCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	productID := c.Param("productId")

	ctx := context.Background()
	items := cart.RemoveItem(loadCartItems(ctx, sessionID), productID)

	saveCartItems(ctx, sessionID, items)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   items,
		"totals":  cart.Totals(items),
	})
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	ctx := context.Background()

	if err := database.Redis.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}
	database.Redis.Publish(ctx, cartKey(sessionID), "cleared")

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé avec succès",
	})
}
