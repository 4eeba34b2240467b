// File: helphive/handlers/profile.go
package handlers

import (
	"errors"
	"net/http"

	"helphive/models"
	"helphive/services/profile"
	"helphive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes the customer profile endpoints.
type ProfileHandler struct {
	Service profile.ProfileService
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// GetProfileHandler handles GET /profiles/:id.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	userID := c.Param("id")
	p, err := h.Service.Get(userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Profile not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch profile", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": p})
}

// UpsertProfileHandler handles PUT /profiles/:id.
func (h *ProfileHandler) UpsertProfileHandler(c *gin.Context) {
	userID := c.Param("id")
	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	p, err := h.Service.Upsert(userID, input)
	if err != nil {
		utils.GetLogger().Error("Failed to upsert profile", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": p})
}
