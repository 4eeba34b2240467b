// File: helphive/handlers/provider.go
package handlers

import (
	"errors"
	"net/http"

	providerRepo "helphive/database/repository/provider"
	"helphive/models"
	"helphive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes the read-only curated provider directory.
type ProviderHandler struct {
	Repo providerRepo.ProviderRepository
}

// NewProviderHandler creates a new ProviderHandler instance.
func NewProviderHandler(repo providerRepo.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{Repo: repo}
}

// ListProvidersHandler handles GET /providers.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	providers, err := h.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching providers"})
		return
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "providers": providers})
}

// GetProviderHandler handles GET /providers/:id.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch provider", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching provider"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "provider": p})
}
