package cache

import (
	"context"
	"encoding/json"
	"time"

	"gromarche_back_end/internal/database"
	"gromarche_back_end/internal/models"
)

const (
	CatalogCacheTTL = 1 * time.Hour

	categoriesKey = "catalog:categories"
	productsKey   = "catalog:products"
	tagsKey       = "catalog:tags"
)

// GetCatalogFromCache récupère les collections du catalogue depuis Redis.
// Retourne false si une des collections manque ou est illisible.
func GetCatalogFromCache() ([]models.Category, []models.Product, []models.Tag, bool) {
	ctx := context.Background()

	var categories []models.Category
	var products []models.Product
	var tags []models.Tag

	data, err := database.Redis.Get(ctx, categoriesKey).Result()
	if err != nil || json.Unmarshal([]byte(data), &categories) != nil {
		return nil, nil, nil, false
	}

	data, err = database.Redis.Get(ctx, productsKey).Result()
	if err != nil || json.Unmarshal([]byte(data), &products) != nil {
		return nil, nil, nil, false
	}

	data, err = database.Redis.Get(ctx, tagsKey).Result()
	if err != nil || json.Unmarshal([]byte(data), &tags) != nil {
		return nil, nil, nil, false
	}

	return categories, products, tags, true
}

// StoreCatalogInCache met les collections du catalogue en cache
func StoreCatalogInCache(categories []models.Category, products []models.Product, tags []models.Tag) {
	ctx := context.Background()

	if data, err := json.Marshal(categories); err == nil {
		database.Redis.Set(ctx, categoriesKey, data, CatalogCacheTTL)
	}
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, productsKey, data, CatalogCacheTTL)
	}
	if data, err := json.Marshal(tags); err == nil {
		database.Redis.Set(ctx, tagsKey, data, CatalogCacheTTL)
	}
}
