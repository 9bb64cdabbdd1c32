package catalog

import (
	"log"

	"gromarche_back_end/internal/models"
)

// ChildrenOf retourne les enfants directs d'une catégorie,
// dans l'ordre du catalogue.
func (c *Catalog) ChildrenOf(categoryID string) []models.Category {
	indexes := c.childrenByID[categoryID]
	if len(indexes) == 0 {
		return nil
	}
	children := make([]models.Category, 0, len(indexes))
	for _, i := range indexes {
		children = append(children, c.Categories[i])
	}
	return children
}

// AncestorChain retourne la chaîne complète racine → catégorie incluse.
// Retourne nil si l'id est inconnu.
func (c *Catalog) AncestorChain(categoryID string) []models.Category {
	cat := c.FindByID(categoryID)
	if cat == nil {
		return nil
	}

	var chain []models.Category
	visited := make(map[string]bool)

	for cat != nil {
		if visited[cat.ID] {
			// L'invariant du catalogue interdit les cycles ; si la donnée
			// est corrompue on s'arrête au lieu de boucler
			log.Printf("⚠️ Cycle détecté dans la hiérarchie des catégories (id=%s)", cat.ID)
			break
		}
		visited[cat.ID] = true

		chain = append([]models.Category{*cat}, chain...)
		if cat.ParentID == nil {
			break
		}
		cat = c.FindByID(*cat.ParentID)
	}

	return chain
}

// DescendantSlugs retourne le slug de la catégorie plus ceux de toutes
// les catégories atteignables via ses enfants (parcours en profondeur).
// C'est LE test d'appartenance "ce produit est-il dans cette catégorie
// ou une de ses sous-catégories".
func (c *Catalog) DescendantSlugs(categoryID string) map[string]bool {
	slugs := make(map[string]bool)
	visited := make(map[string]bool)
	c.collectDescendantSlugs(categoryID, slugs, visited)
	return slugs
}

func (c *Catalog) collectDescendantSlugs(categoryID string, slugs, visited map[string]bool) {
	if visited[categoryID] {
		log.Printf("⚠️ Cycle détecté dans la hiérarchie des catégories (id=%s)", categoryID)
		return
	}
	visited[categoryID] = true

	cat := c.FindByID(categoryID)
	if cat == nil {
		return
	}

	slugs[cat.Slug] = true
	for _, i := range c.childrenByID[categoryID] {
		c.collectDescendantSlugs(c.Categories[i].ID, slugs, visited)
	}
}
