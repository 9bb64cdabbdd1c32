package shop

import "gromarche_back_end/internal/models"

// DefaultPageSize est la taille de page du storefront.
const DefaultPageSize = 24

// Ellipsis marque une plage de pages repliée dans la fenêtre de
// pagination.
const Ellipsis = -1

type PageResult struct {
	Items       []models.Product
	TotalPages  int
	CurrentPage int
}

// Paginate découpe la séquence en pages de taille fixe. Un numéro de
// page hors bornes (URL périmée par exemple) est ramené dans
// [1, TotalPages] : jamais d'erreur, jamais de page vide quand des
// pages valides existent.
func Paginate(products []models.Product, pageSize, page int) PageResult {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(products) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(products) {
		start = len(products)
	}
	if end > len(products) {
		end = len(products)
	}

	return PageResult{
		Items:       products[start:end],
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

// PageWindow calcule les numéros de page à afficher : toujours la
// première et la dernière, la page courante et jusqu'à 2 voisines de
// chaque côté ; les plages sautées sont repliées en un seul marqueur
// Ellipsis.
func PageWindow(current, total int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	var window []int
	for page := 1; page <= total; page++ {
		keep := page == 1 || page == total ||
			(page >= current-2 && page <= current+2)
		if keep {
			window = append(window, page)
		} else if window[len(window)-1] != Ellipsis {
			window = append(window, Ellipsis)
		}
	}
	return window
}
