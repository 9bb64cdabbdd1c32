package shop

import (
	"gromarche_back_end/internal/models"
)

// Crumb est un maillon du fil d'Ariane, prêt à afficher.
type Crumb struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// TreeNode est un nœud de la vue arborescente des catégories, avec les
// indicateurs dont l'interface a besoin pour déplier et surligner.
type TreeNode struct {
	models.Category
	Path     string      `json:"path"`
	Selected bool        `json:"selected"`
	Expanded bool        `json:"expanded"`
	Children []*TreeNode `json:"children,omitempty"`
}

// VisibleResult est la vue paginée prête à rendre.
type VisibleResult struct {
	Items           []models.Product `json:"items"`
	TotalCount      int              `json:"totalCount"`
	TotalPages      int              `json:"totalPages"`
	CurrentPage     int              `json:"currentPage"`
	PageWindow      []int            `json:"pageWindow"`
	UnknownCategory bool             `json:"unknownCategory,omitempty"`
}

// VisibleProducts applique filtre, tri et pagination sur le catalogue
// pour l'état courant.
func (c *Controller) VisibleProducts() VisibleResult {
	filtered := Filter(c.cat, c.cat.Products, c.state)
	sorted := SortProducts(filtered.Products, c.state.Sort)
	page := Paginate(sorted, DefaultPageSize, c.state.Page)

	return VisibleResult{
		Items:           page.Items,
		TotalCount:      len(sorted),
		TotalPages:      page.TotalPages,
		CurrentPage:     page.CurrentPage,
		PageWindow:      PageWindow(page.CurrentPage, page.TotalPages),
		UnknownCategory: filtered.UnknownCategory,
	}
}

// Breadcrumb retourne la chaîne racine → sélection, chaque maillon
// avec son chemin canonique. Vide quand rien n'est sélectionné.
func (c *Controller) Breadcrumb() []Crumb {
	if c.state.Category == "" {
		return nil
	}
	selected := c.cat.FindBySlug(c.state.Category)
	if selected == nil {
		return nil
	}

	chain := c.cat.AncestorChain(selected.ID)
	crumbs := make([]Crumb, 0, len(chain))
	for _, cat := range chain {
		crumbs = append(crumbs, Crumb{
			Name: cat.Name,
			Path: c.cat.BuildCategoryPath(&cat),
		})
	}
	return crumbs
}

// CategoryTree retourne la forêt complète avec les indicateurs
// déplié/sélectionné calculés pour la sélection courante.
func (c *Controller) CategoryTree() []*TreeNode {
	expanded := make(map[string]bool)
	for _, id := range c.ExpandedCategoryIDs() {
		expanded[id] = true
	}

	var selectedID string
	if c.state.Category != "" {
		if selected := c.cat.FindBySlug(c.state.Category); selected != nil {
			selectedID = selected.ID
		}
	}

	var build func(cat models.Category) *TreeNode
	build = func(cat models.Category) *TreeNode {
		node := &TreeNode{
			Category: cat,
			Path:     c.cat.BuildCategoryPath(&cat),
			Selected: cat.ID == selectedID,
			Expanded: expanded[cat.ID],
		}
		for _, child := range c.cat.ChildrenOf(cat.ID) {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	var forest []*TreeNode
	for _, root := range c.cat.Roots() {
		forest = append(forest, build(root))
	}
	return forest
}
