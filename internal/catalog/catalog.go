package catalog

import (
	"strings"

	"gromarche_back_end/internal/models"
)

// Catalog est le catalogue complet d'une session : chargé une fois,
// jamais muté ensuite. Les tables de correspondance sont construites
// à la création pour éviter les parcours linéaires répétés.
type Catalog struct {
	Categories []models.Category
	Products   []models.Product
	Tags       []models.Tag

	categoryByID   map[string]int   // id → index dans Categories
	categoryBySlug map[string]int   // slug → index (premier trouvé dans l'ordre du catalogue)
	childrenByID   map[string][]int // parent id → indexes enfants, dans l'ordre du catalogue
	productByID    map[string]int
	productBySKU   map[string]int // clé en minuscules
}

// Current est le catalogue de la session, figé après le chargement initial.
var Current *Catalog

// New construit le catalogue et ses index.
func New(categories []models.Category, products []models.Product, tags []models.Tag) *Catalog {
	c := &Catalog{
		Categories:     categories,
		Products:       products,
		Tags:           tags,
		categoryByID:   make(map[string]int, len(categories)),
		categoryBySlug: make(map[string]int, len(categories)),
		childrenByID:   make(map[string][]int),
		productByID:    make(map[string]int, len(products)),
		productBySKU:   make(map[string]int, len(products)),
	}

	for i, cat := range categories {
		c.categoryByID[cat.ID] = i
		// Les slugs ne sont pas garantis uniques sur tout l'arbre :
		// le premier trouvé gagne, comme dans le storefront.
		if _, exists := c.categoryBySlug[cat.Slug]; !exists {
			c.categoryBySlug[cat.Slug] = i
		}
		if cat.ParentID != nil {
			c.childrenByID[*cat.ParentID] = append(c.childrenByID[*cat.ParentID], i)
		}
	}

	for i, p := range products {
		c.productByID[p.ID] = i
		c.productBySKU[strings.ToLower(p.SKU)] = i
	}

	return c
}

// FindByID retourne la catégorie correspondante, ou nil si inconnue.
func (c *Catalog) FindByID(id string) *models.Category {
	if i, ok := c.categoryByID[id]; ok {
		return &c.Categories[i]
	}
	return nil
}

// FindBySlug retourne la première catégorie portant ce slug, ou nil.
func (c *Catalog) FindBySlug(slug string) *models.Category {
	if i, ok := c.categoryBySlug[slug]; ok {
		return &c.Categories[i]
	}
	return nil
}

// FindProductByID retourne le produit correspondant, ou nil.
func (c *Catalog) FindProductByID(id string) *models.Product {
	if i, ok := c.productByID[id]; ok {
		return &c.Products[i]
	}
	return nil
}

// FindProductBySKU retourne le produit correspondant (SKU insensible
// à la casse), ou nil.
func (c *Catalog) FindProductBySKU(sku string) *models.Product {
	if i, ok := c.productBySKU[strings.ToLower(sku)]; ok {
		return &c.Products[i]
	}
	return nil
}

// Roots retourne les catégories racines dans l'ordre du catalogue.
func (c *Catalog) Roots() []models.Category {
	var roots []models.Category
	for _, cat := range c.Categories {
		if cat.ParentID == nil {
			roots = append(roots, cat)
		}
	}
	return roots
}
