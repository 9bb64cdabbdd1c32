package fastorder

import (
	"regexp"
	"strconv"
	"strings"

	"gromarche_back_end/internal/catalog"
	"gromarche_back_end/internal/models"
)

var fieldSeparator = regexp.MustCompile(`[\s,\t]+`)

// ParseText valide un texte de commande rapide ligne par ligne
// (formats acceptés : "SKU quantité", séparé par espaces, virgules ou
// tabulations). Chaque ligne est classée valide / SKU introuvable /
// quantité invalide ; une mauvaise ligne n'interrompt jamais le
// traitement du reste.
func ParseText(cat *catalog.Catalog, text string) []models.ParsedItem {
	var items []models.ParsedItem

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		parts := fieldSeparator.Split(strings.TrimSpace(line), -1)
		if len(parts) < 2 {
			continue
		}

		sku := parts[0]
		quantity, err := strconv.Atoi(parts[1])

		if err != nil || quantity < 1 {
			items = append(items, models.ParsedItem{
				SKU:     sku,
				Status:  models.LineInvalid,
				Message: "Quantité invalide",
			})
			continue
		}

		items = append(items, classify(cat, sku, quantity))
	}

	return items
}

// Resolve classe des couples SKU/quantité déjà extraits (réponse du
// collaborateur IA) contre le catalogue.
func Resolve(cat *catalog.Catalog, parsed []OrderItem) []models.ParsedItem {
	items := make([]models.ParsedItem, 0, len(parsed))
	for _, item := range parsed {
		if item.Quantity < 1 {
			items = append(items, models.ParsedItem{
				SKU:     item.SKU,
				Status:  models.LineInvalid,
				Message: "Quantité invalide",
			})
			continue
		}
		items = append(items, classify(cat, item.SKU, item.Quantity))
	}
	return items
}

func classify(cat *catalog.Catalog, sku string, quantity int) models.ParsedItem {
	product := cat.FindProductBySKU(sku)
	if product == nil {
		return models.ParsedItem{
			SKU:      sku,
			Quantity: quantity,
			Status:   models.LineNotFound,
			Message:  "SKU introuvable",
		}
	}

	return models.ParsedItem{
		SKU:      product.SKU,
		Quantity: quantity,
		Status:   models.LineValid,
		Product:  product,
	}
}

// CSVTemplate est le modèle téléchargeable pour la commande rapide.
const CSVTemplate = "SKU,Quantity\nPAS-001,5\nPAS-002,10\nBEV-001,3\n"
