package catalog

import (
	"strings"

	"gromarche_back_end/internal/models"
)

const ShopRootPath = "/shop"

// BuildCategoryPath produit le chemin hiérarchique canonique
// /shop/<racine>/…/<slug>. Une catégorie nil ou inconnue donne /shop.
func (c *Catalog) BuildCategoryPath(cat *models.Category) string {
	if cat == nil {
		return ShopRootPath
	}

	chain := c.AncestorChain(cat.ID)
	if len(chain) == 0 {
		return ShopRootPath
	}

	segments := make([]string, 0, len(chain))
	for _, ancestor := range chain {
		segments = append(segments, ancestor.Slug)
	}

	return ShopRootPath + "/" + strings.Join(segments, "/")
}

// BuildProductPath produit /shop/<chaîne de catégories>/product/<id>.
// La sous-catégorie prime sur la catégorie ; si aucun slug ne se résout,
// le chemin retombe proprement sur /shop/product/<id> (jamais de
// segment vide).
func (c *Catalog) BuildProductPath(p models.Product) string {
	var cat *models.Category
	if p.Subcategory != "" {
		cat = c.FindBySlug(p.Subcategory)
	}
	if cat == nil && p.Category != "" {
		cat = c.FindBySlug(p.Category)
	}

	if cat == nil {
		return ShopRootPath + "/product/" + p.ID
	}

	return c.BuildCategoryPath(cat) + "/product/" + p.ID
}

// ResolveCategoryPath résout un chemin /shop/a/b/c en le faisant
// correspondre niveau par niveau aux slugs, en partant des racines.
// Retourne nil si un segment ne correspond à aucun enfant du niveau.
func (c *Catalog) ResolveCategoryPath(path string) *models.Category {
	trimmed := strings.TrimPrefix(path, ShopRootPath)
	segments := []string{}
	for _, seg := range strings.Split(trimmed, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return nil
	}

	// Premier segment : parmi les racines
	var current *models.Category
	for _, root := range c.Roots() {
		if root.Slug == segments[0] {
			cat := root
			current = &cat
			break
		}
	}
	if current == nil {
		return nil
	}

	// Segments suivants : parmi les enfants du niveau courant
	for _, seg := range segments[1:] {
		var next *models.Category
		for _, child := range c.ChildrenOf(current.ID) {
			if child.Slug == seg {
				cat := child
				next = &cat
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}

	return current
}
