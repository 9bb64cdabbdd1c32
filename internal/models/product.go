package models

// Product référence ses catégories par slug (et non par id),
// conformément au contrat du storefront.
type Product struct {
	ID               string   `json:"id"`
	SKU              string   `json:"sku"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Price            float64  `json:"price"`
	Images           []string `json:"images"`
	Category         string   `json:"category"`
	Subcategory      string   `json:"subcategory,omitempty"`
	Brand            string   `json:"brand,omitempty"`
	PackSize         string   `json:"packSize,omitempty"`
	Unit             string   `json:"unit,omitempty"`
	Stock            int      `json:"stock"`
	InStock          bool     `json:"inStock"`
	Tags             []string `json:"tags,omitempty"`
}
