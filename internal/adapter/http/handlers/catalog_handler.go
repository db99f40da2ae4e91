package handlers

import (
	"net/http"

	response "imobtech_xpto/internal/adapter/http/dto/response"
	"imobtech_xpto/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the active pricing table identity.

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetCatalog returns the catalog version, content hash and frequency terms.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog))
}
