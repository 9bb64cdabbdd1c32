package shop

import (
	"net/url"
	"testing"
)

func TestSelectCategoryToggle(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.SelectCategory("beverages")
	if ctrl.State().Category != "beverages" {
		t.Fatalf("Category = %q, attendu beverages", ctrl.State().Category)
	}

	// Re-sélectionner la même catégorie la désélectionne
	ctrl.SelectCategory("beverages")
	if ctrl.State().Category != "" {
		t.Errorf("Category = %q après double sélection, attendu vide", ctrl.State().Category)
	}
}

func TestSelectCategoryResetsPage(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.state.Page = 3
	ctrl.SelectCategory("snacks")
	if ctrl.State().Page != 1 {
		t.Errorf("Page = %d après changement de catégorie, attendu 1", ctrl.State().Page)
	}
}

func TestToggleTag(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.ToggleTag("organic")
	if !ctrl.State().Tags["organic"] {
		t.Fatal("tag organic absent après ToggleTag")
	}

	ctrl.ToggleTag("organic")
	if ctrl.State().Tags["organic"] {
		t.Error("tag organic toujours présent après second ToggleTag")
	}
}

// Changer le tri ne touche pas à la page : retrier le même ensemble
// filtré n'invalide pas la position du visiteur.
func TestSetSortPreservesPage(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.state.Page = 2
	ctrl.SetSort(SortPriceHigh)
	if ctrl.State().Page != 2 {
		t.Errorf("Page = %d après SetSort, attendu 2", ctrl.State().Page)
	}
	if ctrl.State().Sort != SortPriceHigh {
		t.Errorf("Sort = %q, attendu %q", ctrl.State().Sort, SortPriceHigh)
	}
}

func TestClearAll(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.SelectCategory("beverages")
	ctrl.ToggleTag("organic")
	ctrl.SetSearch("juice")
	ctrl.SetSort(SortName)
	ctrl.SetView(ViewList)

	ctrl.ClearAll()

	state := ctrl.State()
	if state.Category != "" {
		t.Errorf("Category = %q, attendu vide", state.Category)
	}
	if len(state.Tags) != 0 {
		t.Errorf("Tags = %v, attendu vide", state.Tags)
	}
	if state.Search != "" {
		t.Errorf("Search = %q, attendu vide", state.Search)
	}
	if state.Page != 1 {
		t.Errorf("Page = %d, attendu 1", state.Page)
	}
	// Le tri et le mode d'affichage survivent au reset
	if state.Sort != SortName || state.View != ViewList {
		t.Errorf("Sort/View = %q/%q, attendu conservés", state.Sort, state.View)
	}
}

func TestGoToCategoryExpandsAncestors(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.GoToCategory("pasta-passata-pesto")

	if ctrl.State().Category != "pasta-passata-pesto" {
		t.Fatalf("Category = %q, attendu pasta-passata-pesto", ctrl.State().Category)
	}

	expanded := map[string]bool{}
	for _, id := range ctrl.ExpandedCategoryIDs() {
		expanded[id] = true
	}
	for _, want := range []string{"15", "114", "pasta-passata"} {
		if !expanded[want] {
			t.Errorf("ExpandedCategoryIDs ne contient pas %q : %v", want, ctrl.ExpandedCategoryIDs())
		}
	}
}

func TestGoToCategoryByID(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.GoToCategory("114")
	if ctrl.State().Category != "sauces-pastes-pasta" {
		t.Errorf("Category = %q, attendu sauces-pastes-pasta", ctrl.State().Category)
	}

	// Re-cliquer la même catégorie ne la désélectionne pas
	ctrl.GoToCategory("114")
	if ctrl.State().Category != "sauces-pastes-pasta" {
		t.Errorf("Category = %q après second clic, attendu inchangée", ctrl.State().Category)
	}
}

func TestSetPageClampsAgainstFilteredSet(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	// 5 produits, une seule page : toute demande retombe sur 1
	ctrl.SetPage(99)
	if ctrl.State().Page != 1 {
		t.Errorf("Page = %d, attendu 1", ctrl.State().Page)
	}
}

func TestValuesOmitsDefaults(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	if encoded := ctrl.Values().Encode(); encoded != "" {
		t.Errorf("état par défaut sérialisé en %q, attendu vide", encoded)
	}
}

func TestValuesSerialization(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.SelectCategory("beverages")
	ctrl.ToggleTag("organic")
	ctrl.ToggleTag("italian")
	ctrl.SetSearch("juice")
	ctrl.SetSort(SortPriceLow)
	ctrl.SetView(ViewList)
	ctrl.SetInStockOnly(true)

	values := ctrl.Values()
	if values.Get("category") != "beverages" {
		t.Errorf("category = %q", values.Get("category"))
	}
	// Les tags sont joints par virgule, ordre déterministe
	if values.Get("tags") != "italian,organic" {
		t.Errorf("tags = %q, attendu italian,organic", values.Get("tags"))
	}
	if values.Get("search") != "juice" {
		t.Errorf("search = %q", values.Get("search"))
	}
	if values.Get("sort") != SortPriceLow {
		t.Errorf("sort = %q", values.Get("sort"))
	}
	if values.Get("view") != ViewList {
		t.Errorf("view = %q", values.Get("view"))
	}
	if values.Get("stock") != "in" {
		t.Errorf("stock = %q", values.Get("stock"))
	}
}

// Aller-retour : sérialiser puis réhydrater redonne le même état.
func TestValuesRoundTrip(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.SelectCategory("food-cupboard")
	ctrl.ToggleTag("italian")
	ctrl.SetSearch("penne")
	ctrl.SetSort(SortName)

	hydrated := StateFromValues(ctrl.Values())

	original := ctrl.State()
	if hydrated.Category != original.Category ||
		hydrated.Search != original.Search ||
		hydrated.Sort != original.Sort ||
		hydrated.View != original.View ||
		hydrated.Page != original.Page ||
		hydrated.InStockOnly != original.InStockOnly {
		t.Errorf("aller-retour : %+v != %+v", hydrated, original)
	}
	if len(hydrated.Tags) != len(original.Tags) {
		t.Errorf("tags : %v != %v", hydrated.Tags, original.Tags)
	}
	for tag := range original.Tags {
		if !hydrated.Tags[tag] {
			t.Errorf("tag %q perdu dans l'aller-retour", tag)
		}
	}
}

func TestStateFromValuesDefaults(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, s FilterState)
	}{
		{"Vide", "", func(t *testing.T, s FilterState) {
			if s.Category != "" || s.Page != 1 || s.Sort != SortFeatured || s.View != ViewGrid {
				t.Errorf("état par défaut incorrect : %+v", s)
			}
		}},
		{"Page invalide", "page=abc", func(t *testing.T, s FilterState) {
			if s.Page != 1 {
				t.Errorf("Page = %d, attendu 1", s.Page)
			}
		}},
		{"Page négative", "page=-3", func(t *testing.T, s FilterState) {
			if s.Page != 1 {
				t.Errorf("Page = %d, attendu 1", s.Page)
			}
		}},
		{"Tags avec blancs", "tags=organic,+,italian", func(t *testing.T, s FilterState) {
			if !s.Tags["organic"] || !s.Tags["italian"] || len(s.Tags) != 2 {
				t.Errorf("Tags = %v, attendu {organic italian}", s.Tags)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("query invalide : %v", err)
			}
			tt.check(t, StateFromValues(values))
		})
	}
}

func TestVisibleProducts(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.SelectCategory("food-cupboard")
	result := ctrl.VisibleProducts()

	if result.TotalCount != 3 {
		t.Errorf("TotalCount = %d, attendu 3", result.TotalCount)
	}
	if result.CurrentPage != 1 || result.TotalPages != 1 {
		t.Errorf("pagination = %d/%d, attendu 1/1", result.CurrentPage, result.TotalPages)
	}
	if result.UnknownCategory {
		t.Error("UnknownCategory signalé à tort")
	}
}

func TestBreadcrumb(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.GoToCategory("pasta-passata-pesto")
	crumbs := ctrl.Breadcrumb()

	wantPaths := []string{
		"/shop/food-cupboard",
		"/shop/food-cupboard/sauces-pastes-pasta",
		"/shop/food-cupboard/sauces-pastes-pasta/pasta-passata-pesto",
	}
	if len(crumbs) != len(wantPaths) {
		t.Fatalf("Breadcrumb = %d maillons, attendu %d", len(crumbs), len(wantPaths))
	}
	for i, crumb := range crumbs {
		if crumb.Path != wantPaths[i] {
			t.Errorf("Breadcrumb[%d].Path = %q, attendu %q", i, crumb.Path, wantPaths[i])
		}
	}
}

func TestCategoryTreeFlags(t *testing.T) {
	ctrl := NewController(newTestCatalog())

	ctrl.GoToCategory("sauces-pastes-pasta")
	forest := ctrl.CategoryTree()

	var foodCupboard *TreeNode
	for _, root := range forest {
		if root.ID == "15" {
			foodCupboard = root
		}
	}
	if foodCupboard == nil {
		t.Fatal("racine food-cupboard absente de l'arbre")
	}
	if !foodCupboard.Expanded {
		t.Error("l'ancêtre de la sélection n'est pas déplié")
	}

	var sauces *TreeNode
	for _, child := range foodCupboard.Children {
		if child.ID == "114" {
			sauces = child
		}
	}
	if sauces == nil {
		t.Fatal("sauces-pastes-pasta absent des enfants")
	}
	if !sauces.Selected {
		t.Error("la catégorie sélectionnée n'est pas marquée")
	}
	if len(sauces.Children) != 1 || sauces.Children[0].Slug != "pasta-passata-pesto" {
		t.Errorf("enfants de sauces = %v", sauces.Children)
	}
}
