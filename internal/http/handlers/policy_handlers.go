package handlers

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// PolicyHandlers exposes Casbin policy administration
type PolicyHandlers struct {
	E *casbin.Enforcer
}

// PolicyRequest represents one policy rule
type PolicyRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// List handles GET /admin/policies
func (h *PolicyHandlers) List(c *gin.Context) {
	policies, err := h.E.GetPolicy()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load policies"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"policies": policies}})
}

// Add handles POST /admin/policies
func (h *PolicyHandlers) Add(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.E.AddPolicy(req.Role, req.Resource, req.Action)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add policy"})
		return
	}
	if err := h.E.SavePolicy(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist policy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"added": added}})
}

// Remove handles DELETE /admin/policies
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	removed, err := h.E.RemovePolicy(req.Role, req.Resource, req.Action)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove policy"})
		return
	}
	if err := h.E.SavePolicy(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist policy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"removed": removed}})
}
