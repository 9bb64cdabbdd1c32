package shop

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gromarche_back_end/internal/models"
)

var nameCollator = collate.New(language.English)

// SortProducts trie une copie des produits selon la clé demandée.
// Le tri est stable : à clé égale l'ordre du catalogue est préservé,
// ce dont dépend la clé "featured" (aucun réordonnancement).
func SortProducts(products []models.Product, sortKey string) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch sortKey {
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return nameCollator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	}
	// SortFeatured (et toute clé inconnue) : ordre du catalogue

	return sorted
}
