package catalog

import (
	"fmt"
	"log"

	"github.com/gocql/gocql"

	"gromarche_back_end/internal/cache"
	"gromarche_back_end/internal/database"
	"gromarche_back_end/internal/models"
)

// Load charge le catalogue complet (catégories, produits, tags) puis le
// fige pour la durée de la session. Redis sert de cache de premier
// niveau, ScyllaDB de source de vérité. Appelé une seule fois au
// démarrage ; un échec ici est fatal, la politique de retry appartient
// à la plateforme.
func Load() error {
	if categories, products, tags, ok := cache.GetCatalogFromCache(); ok {
		Current = New(categories, products, tags)
		log.Printf("✅ Catalogue chargé depuis Redis (%d catégories, %d produits, %d tags)",
			len(categories), len(products), len(tags))
		return nil
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return fmt.Errorf("connexion ScyllaDB impossible: %v", err)
	}

	categories, err := loadCategories(session)
	if err != nil {
		return fmt.Errorf("lecture des catégories: %v", err)
	}

	products, err := loadProducts(session)
	if err != nil {
		return fmt.Errorf("lecture des produits: %v", err)
	}

	tags, err := loadTags(session)
	if err != nil {
		return fmt.Errorf("lecture des tags: %v", err)
	}

	cache.StoreCatalogInCache(categories, products, tags)

	Current = New(categories, products, tags)
	log.Printf("✅ Catalogue chargé depuis ScyllaDB (%d catégories, %d produits, %d tags)",
		len(categories), len(products), len(tags))

	return nil
}

func loadCategories(session *gocql.Session) ([]models.Category, error) {
	iter := session.Query(`
		SELECT id, slug, name, parent_id, product_count, image
		FROM categories
	`).Iter()

	var categories []models.Category
	var cat models.Category
	var parentID string

	for iter.Scan(&cat.ID, &cat.Slug, &cat.Name, &parentID, &cat.ProductCount, &cat.Image) {
		if parentID != "" {
			pid := parentID
			cat.ParentID = &pid
		} else {
			cat.ParentID = nil
		}
		categories = append(categories, cat)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return categories, nil
}

func loadProducts(session *gocql.Session) ([]models.Product, error) {
	iter := session.Query(`
		SELECT id, sku, name, description, short_description, price, images,
		       category, subcategory, brand, pack_size, unit, stock, in_stock, tags
		FROM products
	`).Iter()

	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.ShortDescription,
		&p.Price, &p.Images, &p.Category, &p.Subcategory, &p.Brand,
		&p.PackSize, &p.Unit, &p.Stock, &p.InStock, &p.Tags) {
		products = append(products, p)
		p = models.Product{}
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

func loadTags(session *gocql.Session) ([]models.Tag, error) {
	iter := session.Query(`SELECT id, name FROM tags`).Iter()

	var tags []models.Tag
	var tag models.Tag

	for iter.Scan(&tag.ID, &tag.Name) {
		tags = append(tags, tag)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return tags, nil
}
