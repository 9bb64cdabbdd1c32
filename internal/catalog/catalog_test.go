package catalog

import (
	"testing"

	"gromarche_back_end/internal/models"
)

func strPtr(s string) *string { return &s }

// testCatalog reproduit la hiérarchie du storefront sur 3 niveaux :
// food-cupboard → sauces-pastes-pasta → pasta-passata-pesto.
func testCatalog() *Catalog {
	categories := []models.Category{
		{ID: "15", Slug: "food-cupboard", Name: "Food Cupboard"},
		{ID: "16", Slug: "beverages", Name: "Beverages"},
		{ID: "19", Slug: "snacks", Name: "Snacks"},
		{ID: "114", Slug: "sauces-pastes-pasta", Name: "Sauces, Pastes & Pasta", ParentID: strPtr("15")},
		{ID: "116", Slug: "rice-grains", Name: "Rice & Grains", ParentID: strPtr("15")},
		{ID: "pasta-passata", Slug: "pasta-passata-pesto", Name: "Pasta, Passata & Pesto", ParentID: strPtr("114")},
		{ID: "asian-sauces", Slug: "asian-sauces", Name: "Asian Sauces", ParentID: strPtr("114")},
		{ID: "soft-drinks", Slug: "soft-drinks", Name: "Soft Drinks", ParentID: strPtr("16")},
	}

	products := []models.Product{
		{ID: "p1", SKU: "PAS-001", Name: "Penne Rigate 500g", Description: "Pâtes italiennes", Price: 12.50, Category: "food-cupboard", Subcategory: "pasta-passata-pesto", Stock: 100, InStock: true, Tags: []string{"italian"}},
		{ID: "p2", SKU: "PAS-002", Name: "Passata Rustica", Description: "Sauce tomate", Price: 8.99, Category: "food-cupboard", Subcategory: "pasta-passata-pesto", Stock: 40, InStock: true, Tags: []string{"organic", "italian"}},
		{ID: "p3", SKU: "BEV-001", Name: "Orange Juice 1L", Description: "Pur jus d'orange", Price: 15.00, Category: "beverages", Subcategory: "soft-drinks", Stock: 25, InStock: true, Tags: []string{"organic"}},
		{ID: "p4", SKU: "RIC-001", Name: "Basmati Rice 5kg", Description: "Riz basmati", Price: 12.50, Category: "food-cupboard", Subcategory: "rice-grains", Stock: 0, InStock: false},
		{ID: "p5", SKU: "SNK-001", Name: "Salted Crisps", Description: "Chips salées", Price: 5.25, Category: "snacks", Stock: 60, InStock: true},
		{ID: "p6", SKU: "MIS-001", Name: "Mystery Box", Description: "Produit orphelin", Price: 9.99, Subcategory: "does-not-exist", Stock: 5, InStock: true},
	}

	tags := []models.Tag{
		{ID: "organic", Name: "Organic"},
		{ID: "italian", Name: "Italian"},
	}

	return New(categories, products, tags)
}

func TestFindBySlug(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name   string
		slug   string
		wantID string
	}{
		{"Racine", "food-cupboard", "15"},
		{"Niveau 2", "sauces-pastes-pasta", "114"},
		{"Niveau 3", "pasta-passata-pesto", "pasta-passata"},
		{"Inconnu", "bogus", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.FindBySlug(tt.slug)
			if tt.wantID == "" {
				if got != nil {
					t.Errorf("FindBySlug(%q) = %v, attendu nil", tt.slug, got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("FindBySlug(%q) = %v, attendu id %q", tt.slug, got, tt.wantID)
			}
		})
	}
}

func TestFindBySlugFirstMatchWins(t *testing.T) {
	// Deux catégories partagent un slug à des positions différentes :
	// la résolution retient la première dans l'ordre du catalogue.
	categories := []models.Category{
		{ID: "a", Slug: "dup", Name: "Premier"},
		{ID: "b", Slug: "dup", Name: "Second", ParentID: strPtr("a")},
	}
	cat := New(categories, nil, nil)

	if got := cat.FindBySlug("dup"); got == nil || got.ID != "a" {
		t.Errorf("FindBySlug(dup) = %v, attendu le premier (id a)", got)
	}
}

func TestFindProductBySKU(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name   string
		sku    string
		wantID string
	}{
		{"Exact", "PAS-001", "p1"},
		{"Minuscules", "pas-001", "p1"},
		{"Casse mixte", "Bev-001", "p3"},
		{"Inconnu", "BOGUS-999", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.FindProductBySKU(tt.sku)
			if tt.wantID == "" {
				if got != nil {
					t.Errorf("FindProductBySKU(%q) = %v, attendu nil", tt.sku, got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("FindProductBySKU(%q) = %v, attendu id %q", tt.sku, got, tt.wantID)
			}
		})
	}
}

func TestRoots(t *testing.T) {
	cat := testCatalog()

	roots := cat.Roots()
	if len(roots) != 3 {
		t.Fatalf("Roots() = %d catégories, attendu 3", len(roots))
	}
	// L'ordre du catalogue est préservé
	wantOrder := []string{"15", "16", "19"}
	for i, root := range roots {
		if root.ID != wantOrder[i] {
			t.Errorf("Roots()[%d].ID = %q, attendu %q", i, root.ID, wantOrder[i])
		}
	}
}
