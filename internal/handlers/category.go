package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gromarche_back_end/internal/catalog"
)

// GetAllCategories liste les catégories dans l'ordre du catalogue.
func GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Current.Categories)
}

// GetCategoryBreadcrumb retourne la chaîne racine → catégorie, chaque
// maillon avec son chemin canonique.
func GetCategoryBreadcrumb(c *gin.Context) {
	categoryID := c.Param("id")

	chain := catalog.Current.AncestorChain(categoryID)
	if len(chain) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}

	type crumb struct {
		Name string `json:"name"`
		Path string `json:"path"`
	}

	crumbs := make([]crumb, 0, len(chain))
	for _, cat := range chain {
		crumbs = append(crumbs, crumb{
			Name: cat.Name,
			Path: catalog.Current.BuildCategoryPath(&cat),
		})
	}

	c.JSON(http.StatusOK, gin.H{"breadcrumb": crumbs})
}

// GetCategoryChildren retourne les enfants directs d'une catégorie.
func GetCategoryChildren(c *gin.Context) {
	categoryID := c.Param("id")

	if catalog.Current.FindByID(categoryID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}

	c.JSON(http.StatusOK, catalog.Current.ChildrenOf(categoryID))
}
