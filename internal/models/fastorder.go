package models

// Statuts de validation d'une ligne de commande rapide.
const (
	LineValid    = "valid"
	LineInvalid  = "invalid"
	LineNotFound = "not-found"
)

// ParsedItem est le résultat de validation d'une ligne SKU/quantité.
// Product n'est renseigné que pour les lignes valides.
type ParsedItem struct {
	SKU      string   `json:"sku"`
	Quantity int      `json:"quantity"`
	Status   string   `json:"status"`
	Product  *Product `json:"product,omitempty"`
	Message  string   `json:"message,omitempty"`
}
