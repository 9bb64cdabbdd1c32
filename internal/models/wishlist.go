package models

type Wishlist struct {
	SessionID string   `json:"sessionId"`
	Items     []string `json:"items"` // ids produits, uniques
}
