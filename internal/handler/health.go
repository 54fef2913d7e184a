package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolportal/internal/version"
)

// HealthHandler serves liveness checks
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports liveness
// GET /healthz
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Get()})
}
