package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/muniras-delights/bakery-app/models"
	"github.com/muniras-delights/bakery-app/utils"
)

// CatalogService reads the seeded menu table. The catalog never changes at
// runtime, so every method is a plain read.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// Price resolves the unit price for a catalog item id. Implements
// models.PriceLookup. Unknown ids report false; cart totals treat them as
// zero, which is why the miss is logged here.
func (cs *CatalogService) Price(itemID string) (float64, bool) {
	var item models.MenuItem
	if err := cs.DB.Select("price").First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("Cart references unknown catalog id %q, counting it as $0", itemID)
		} else {
			utils.ErrorLogger.Printf("Catalog lookup for %q failed: %v", itemID, err)
		}
		return 0, false
	}
	return item.Price, true
}

// List returns catalog items, optionally filtered by category. An unknown
// category yields an empty list, not an error.
func (cs *CatalogService) List(category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	q := cs.DB.Order("category, id")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
