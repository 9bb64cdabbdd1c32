package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gromarche_back_end/internal/catalog"
	"gromarche_back_end/internal/shop"
)

// GetShopProducts rend la vue boutique : l'état de filtrage est hydraté
// une seule fois depuis la query string, la réponse inclut la query
// canonique (champs par défaut omis) à pousser dans l'URL du client.
func GetShopProducts(c *gin.Context) {
	ctrl := shop.NewControllerFromValues(catalog.Current, c.Request.URL.Query())

	// Borne la page demandée contre l'ensemble filtré courant
	ctrl.SetPage(ctrl.State().Page)

	result := ctrl.VisibleProducts()

	c.JSON(http.StatusOK, gin.H{
		"products":    result.Items,
		"total_count": result.TotalCount,
		"pagination": gin.H{
			"page":        result.CurrentPage,
			"total_pages": result.TotalPages,
			"page_window": result.PageWindow,
		},
		"breadcrumb":       ctrl.Breadcrumb(),
		"unknown_category": result.UnknownCategory,
		"query":            ctrl.Values().Encode(),
	})
}

// GetShopFilters retourne les filtres disponibles : l'arbre des
// catégories (déplié jusqu'à la sélection courante), les tags et les
// compteurs de disponibilité.
func GetShopFilters(c *gin.Context) {
	ctrl := shop.NewControllerFromValues(catalog.Current, c.Request.URL.Query())

	inStock, outOfStock := 0, 0
	for _, p := range catalog.Current.Products {
		if p.InStock {
			inStock++
		} else {
			outOfStock++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": ctrl.CategoryTree(),
		"tags":       catalog.Current.Tags,
		"availability": gin.H{
			"in_stock":     inStock,
			"out_of_stock": outOfStock,
		},
		"sort_options": []gin.H{
			{"value": shop.SortFeatured, "label": "En vedette"},
			{"value": shop.SortName, "label": "Nom (A-Z)"},
			{"value": shop.SortPriceLow, "label": "Prix croissant"},
			{"value": shop.SortPriceHigh, "label": "Prix décroissant"},
		},
	})
}

// ResolveShopPath résout un chemin hiérarchique /shop/a/b/c segment par
// segment. Un chemin qui ne correspond à aucune catégorie donne un 404,
// jamais un repli silencieux.
func ResolveShopPath(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le paramètre 'path' est obligatoire"})
		return
	}

	category := catalog.Current.ResolveCategoryPath(path)
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}

	ctrl := shop.NewController(catalog.Current)
	ctrl.GoToCategory(category.Slug)

	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"path":       catalog.Current.BuildCategoryPath(category),
		"breadcrumb": ctrl.Breadcrumb(),
		"expanded":   ctrl.ExpandedCategoryIDs(),
	})
}
