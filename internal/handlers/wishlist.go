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

const wishlistTTL = 30 * 24 * time.Hour

func wishlistKey(sessionID string) string {
	return "wishlist:" + sessionID
}

func loadWishlist(ctx context.Context, sessionID string) []string {
	data, err := database.Redis.Get(ctx, wishlistKey(sessionID)).Result()
	if err != nil || data == "" {
		return nil
	}

	var ids []string
	if json.Unmarshal([]byte(data), &ids) != nil {
		return nil
	}
	return ids
}

func saveWishlist(ctx context.Context, sessionID string, ids []string) {
	data, _ := json.Marshal(ids)
	database.Redis.Set(ctx, wishlistKey(sessionID), data, wishlistTTL)
}

// GetWishlist retourne la liste d'envies avec les produits résolus.
// Un produit retiré du catalogue depuis l'ajout est ignoré, pas une
// erreur.
func GetWishlist(c *gin.Context) {
	sessionID := c.GetString("session_id")
	ctx := context.Background()

	ids := loadWishlist(ctx, sessionID)

	products := []models.Product{}
	for _, id := range ids {
		if product := catalog.Current.FindProductByID(id); product != nil {
			products = append(products, *product)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"wishlist": models.Wishlist{SessionID: sessionID, Items: ids},
		"items":    products,
	})
}

//
// 🟢 POST /api/wishlist
//
func AddToWishlist(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var input struct {
		ProductID string `json:"productId"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if catalog.Current.FindProductByID(input.ProductID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	ctx := context.Background()
	ids := cart.AddToWishlist(loadWishlist(ctx, sessionID), input.ProductID)
	saveWishlist(ctx, sessionID, ids)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté à la liste d'envies",
		"count":   len(ids),
	})
}

//
// ❌ DELETE /api/wishlist/:productId
//
func RemoveFromWishlist(c *gin.Context) {
	sessionID := c.GetString("session_id")
	productID := c.Param("productId")

	ctx := context.Background()
	ids := cart.RemoveFromWishlist(loadWishlist(ctx, sessionID), productID)
	saveWishlist(ctx, sessionID, ids)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit retiré de la liste d'envies",
		"count":   len(ids),
	})
}
