package shop

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"gromarche_back_end/internal/catalog"
)

// Controller possède l'état de filtrage courant et applique les
// transitions de façon atomique : aucune mutation partielle n'est
// observable, chaque transition laisse l'état complet et cohérent.
// L'hydratation depuis l'URL n'a lieu qu'une fois, à la construction,
// ce qui coupe tout risque de boucle état → URL → état.
type Controller struct {
	cat   *catalog.Catalog
	state FilterState
}

func NewController(cat *catalog.Catalog) *Controller {
	return &Controller{cat: cat, state: NewFilterState()}
}

// NewControllerFromValues hydrate l'état initial depuis une query
// string (navigation entrante).
func NewControllerFromValues(cat *catalog.Catalog, values url.Values) *Controller {
	return &Controller{cat: cat, state: StateFromValues(values)}
}

func (c *Controller) State() FilterState {
	return c.state
}

// SelectCategory bascule la sélection : re-sélectionner la catégorie
// courante la désélectionne, en choisir une autre la remplace.
// Tout changement de filtre ramène à la page 1.
func (c *Controller) SelectCategory(slug string) {
	if c.state.Category == slug {
		c.state.Category = ""
	} else {
		c.state.Category = slug
	}
	c.state.Page = 1
}

func (c *Controller) ToggleTag(tagID string) {
	if c.state.Tags[tagID] {
		delete(c.state.Tags, tagID)
	} else {
		c.state.Tags[tagID] = true
	}
	c.state.Page = 1
}

func (c *Controller) SetSearch(query string) {
	c.state.Search = query
	c.state.Page = 1
}

// SetSort change la clé de tri sans toucher à la page : retrier le
// même ensemble filtré n'invalide pas la position du visiteur.
func (c *Controller) SetSort(key string) {
	c.state.Sort = key
}

func (c *Controller) SetView(view string) {
	c.state.View = view
}

func (c *Controller) SetInStockOnly(on bool) {
	c.state.InStockOnly = on
	c.state.Page = 1
}

// SetPage borne le numéro demandé dans [1, totalPages] de l'ensemble
// filtré courant.
func (c *Controller) SetPage(page int) {
	filtered := Filter(c.cat, c.cat.Products, c.state)
	result := Paginate(filtered.Products, DefaultPageSize, page)
	c.state.Page = result.CurrentPage
}

// ClearAll remet catégorie, tags et recherche à zéro et revient page 1.
// Le tri et le mode d'affichage sont conservés.
func (c *Controller) ClearAll() {
	c.state.Category = ""
	c.state.Tags = make(map[string]bool)
	c.state.Search = ""
	c.state.InStockOnly = false
	c.state.Page = 1
}

// GoToCategory sélectionne une catégorie depuis le fil d'Ariane ou
// l'arbre, par slug ou par id. Contrairement à SelectCategory il ne
// bascule pas : re-cliquer la catégorie courante la laisse active.
func (c *Controller) GoToCategory(slugOrID string) {
	cat := c.cat.FindBySlug(slugOrID)
	if cat == nil {
		cat = c.cat.FindByID(slugOrID)
	}
	if cat == nil {
		return
	}
	c.state.Category = cat.Slug
	c.state.Page = 1
}

// ExpandedCategoryIDs retourne les nœuds que l'arbre doit déplier pour
// révéler la sélection courante : la catégorie sélectionnée et tous
// ses ancêtres.
func (c *Controller) ExpandedCategoryIDs() []string {
	if c.state.Category == "" {
		return nil
	}
	selected := c.cat.FindBySlug(c.state.Category)
	if selected == nil {
		return nil
	}

	var ids []string
	for _, ancestor := range c.cat.AncestorChain(selected.ID) {
		ids = append(ids, ancestor.ID)
	}
	return ids
}

// Values sérialise l'état en query string. Les champs à leur valeur
// par défaut sont omis pour garder des URLs minimales ; la
// sérialisation est une fonction pure de l'état, sans champ caché.
func (c *Controller) Values() url.Values {
	return c.state.Values()
}

func (s FilterState) Values() url.Values {
	values := url.Values{}

	if s.Category != "" {
		values.Set("category", s.Category)
	}
	if len(s.Tags) > 0 {
		tags := make([]string, 0, len(s.Tags))
		for tag := range s.Tags {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		values.Set("tags", strings.Join(tags, ","))
	}
	if s.Search != "" {
		values.Set("search", s.Search)
	}
	if s.Sort != "" && s.Sort != SortFeatured {
		values.Set("sort", s.Sort)
	}
	if s.View != "" && s.View != ViewGrid {
		values.Set("view", s.View)
	}
	if s.InStockOnly {
		values.Set("stock", "in")
	}
	if s.Page > 1 {
		values.Set("page", strconv.Itoa(s.Page))
	}

	return values
}

// StateFromValues désérialise une query string en état de filtrage.
// Les clés absentes reprennent leur valeur par défaut ; une page
// invalide retombe sur 1.
func StateFromValues(values url.Values) FilterState {
	state := NewFilterState()

	state.Category = values.Get("category")
	if raw := values.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				state.Tags[tag] = true
			}
		}
	}
	state.Search = values.Get("search")
	if sortKey := values.Get("sort"); sortKey != "" {
		state.Sort = sortKey
	}
	if view := values.Get("view"); view != "" {
		state.View = view
	}
	state.InStockOnly = values.Get("stock") == "in"
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 1 {
		state.Page = page
	}

	return state
}
