package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"serenity/database/repository"
)

// ServiceHandler exposes the read-only treatment catalog.
type ServiceHandler struct {
	Catalog repository.ServiceRepository
}

func NewServiceHandler(catalog repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Catalog: catalog}
}

// ListServices handles GET /api/services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.GetAll())
}

// GetServiceByID handles GET /api/services/:id.
func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	svc, lookupErr := h.Catalog.GetByID(id)
	if lookupErr != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	c.JSON(http.StatusOK, svc)
}
