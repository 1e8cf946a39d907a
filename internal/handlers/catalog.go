// internal/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/severyanochka/storefront-backend/internal/i18n"
	"github.com/severyanochka/storefront-backend/internal/services"
	"github.com/severyanochka/storefront-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /api/products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	products, err := h.catalogService.ListProducts()
	if err != nil {
		logrus.WithError(err).Error("product listing failed")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyProductsLoadFailed))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": products,
	})
}

// GET /api/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	rules, err := h.catalogService.ListCategoryRules()
	if err != nil {
		logrus.WithError(err).Error("category rule listing failed")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyCategoriesLoadFailed))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": rules,
	})
}
