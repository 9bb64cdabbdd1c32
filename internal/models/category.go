package models

// Category est un nœud de la forêt de catégories du catalogue.
// ParentID est nil pour les catégories racines.
type Category struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	ParentID     *string `json:"parentId,omitempty"`
	ProductCount int     `json:"productCount,omitempty"`
	Image        string  `json:"image,omitempty"`
}

// Tag est une facette de filtrage plate, sans hiérarchie.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
