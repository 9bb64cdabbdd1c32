package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gromarche_back_end/internal/catalog"
)

// GetProductByID retourne un produit et son chemin hiérarchique.
func GetProductByID(c *gin.Context) {
	product := catalog.Current.FindProductByID(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"path":    catalog.Current.BuildProductPath(*product),
	})
}

// GetProductBySKU retourne un produit par son SKU (insensible à la casse).
func GetProductBySKU(c *gin.Context) {
	product := catalog.Current.FindProductBySKU(c.Param("sku"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"path":    catalog.Current.BuildProductPath(*product),
	})
}
