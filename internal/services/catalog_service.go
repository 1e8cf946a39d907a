// internal/services/catalog_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/severyanochka/storefront-backend/internal/models"
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListProducts returns the full catalog in ascending id order. The
// storefront client relies on that order; there is no server-side
// pagination in this contract.
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListCategoryRules returns the classifier rule table in rule order.
func (s *CatalogService) ListCategoryRules() ([]models.CategoryRule, error) {
	var rules []models.CategoryRule
	if err := s.db.Order("position ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list category rules: %w", err)
	}
	return rules, nil
}
