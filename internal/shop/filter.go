package shop

import (
	"strings"

	"gromarche_back_end/internal/catalog"
	"gromarche_back_end/internal/models"
)

// Clés de tri acceptées par le storefront.
const (
	SortFeatured  = "featured"
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Modes d'affichage.
const (
	ViewGrid = "grid"
	ViewList = "list"
)

// FilterState est l'état composite de la page boutique : la sélection
// courante, entièrement sérialisable en query string. Les vues dérivées
// (produits filtrés, fil d'Ariane, fenêtre de pagination) sont
// recalculées, jamais stockées.
type FilterState struct {
	Category    string          // slug de la catégorie sélectionnée, "" = aucune
	Tags        map[string]bool // ids de tags sélectionnés (sémantique OU)
	Search      string
	Sort        string
	View        string
	Page        int
	InStockOnly bool
}

// NewFilterState retourne l'état par défaut (aucune sélection, page 1).
func NewFilterState() FilterState {
	return FilterState{
		Tags: make(map[string]bool),
		Sort: SortFeatured,
		View: ViewGrid,
		Page: 1,
	}
}

// FilterResult porte les produits retenus plus l'indicateur de
// catégorie inconnue : un slug non résolu laisse tout passer mais doit
// être signalé à l'interface au lieu d'être silencieux.
type FilterResult struct {
	Products        []models.Product
	UnknownCategory bool
}

// Filter applique le pipeline de prédicats indépendants : appartenance
// aux catégories descendantes, tags, recherche texte, stock. L'ordre
// n'a pas d'importance sémantique, les prédicats commutent.
func Filter(cat *catalog.Catalog, products []models.Product, state FilterState) FilterResult {
	result := FilterResult{Products: products}

	// 1. Catégorie (incluant toutes ses sous-catégories)
	if state.Category != "" {
		selected := cat.FindBySlug(state.Category)
		if selected == nil {
			result.UnknownCategory = true
		} else {
			descendants := cat.DescendantSlugs(selected.ID)
			var kept []models.Product
			for _, p := range result.Products {
				if descendants[p.Category] || (p.Subcategory != "" && descendants[p.Subcategory]) {
					kept = append(kept, p)
				}
			}
			result.Products = kept
		}
	}

	// 2. Tags (au moins un tag en commun)
	if len(state.Tags) > 0 {
		var kept []models.Product
		for _, p := range result.Products {
			for _, tag := range p.Tags {
				if state.Tags[tag] {
					kept = append(kept, p)
					break
				}
			}
		}
		result.Products = kept
	}

	// 3. Recherche texte : sous-chaîne insensible à la casse sur le nom,
	// la description ou le SKU
	if query := strings.TrimSpace(state.Search); query != "" {
		queryLower := strings.ToLower(query)
		var kept []models.Product
		for _, p := range result.Products {
			if strings.Contains(strings.ToLower(p.Name), queryLower) ||
				strings.Contains(strings.ToLower(p.Description), queryLower) ||
				strings.Contains(strings.ToLower(p.SKU), queryLower) {
				kept = append(kept, p)
			}
		}
		result.Products = kept
	}

	// 4. Disponibilité
	if state.InStockOnly {
		var kept []models.Product
		for _, p := range result.Products {
			if p.InStock {
				kept = append(kept, p)
			}
		}
		result.Products = kept
	}

	return result
}
