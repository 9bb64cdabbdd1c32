package cart

import (
	"errors"

	"gromarche_back_end/internal/models"
)

var ErrInvalidQuantity = errors.New("quantité invalide")

// AddItem ajoute un produit au panier. Un produit déjà présent voit sa
// quantité incrémentée, jamais dupliqué.
func AddItem(items []models.CartItem, p models.Product, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return items, ErrInvalidQuantity
	}

	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += quantity
			return items, nil
		}
	}

	imageURL := ""
	if len(p.Images) > 0 {
		imageURL = p.Images[0]
	}

	return append(items, models.CartItem{
		ProductID: p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		ImageURL:  imageURL,
	}), nil
}

// RemoveItem retire un produit du panier. Inconnu = sans effet.
func RemoveItem(items []models.CartItem, productID string) []models.CartItem {
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}

// UpdateQuantity remplace la quantité d'un produit du panier.
func UpdateQuantity(items []models.CartItem, productID string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return items, ErrInvalidQuantity
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return items, nil
		}
	}
	return items, errors.New("produit absent du panier")
}

// Totals calcule les totaux dérivés du panier.
func Totals(items []models.CartItem) models.CartTotals {
	var totals models.CartTotals
	for _, item := range items {
		totals.ItemCount += item.Quantity
		totals.TotalPrice += item.Price * float64(item.Quantity)
	}
	return totals
}

// AddToWishlist ajoute un id produit à la liste d'envies (unique).
func AddToWishlist(ids []string, productID string) []string {
	for _, id := range ids {
		if id == productID {
			return ids
		}
	}
	return append(ids, productID)
}

// RemoveFromWishlist retire un id produit de la liste d'envies.
func RemoveFromWishlist(ids []string, productID string) []string {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	return kept
}
