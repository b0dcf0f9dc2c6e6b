package handlers

import (
	"net/http"

	"clinic/services/catalog"
	"clinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves doctor/specialty/service listings.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListDoctorsHandler handles GET /api/doctors.
func (h *CatalogHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.GetDoctors(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// ListSpecialtiesHandler handles GET /api/specialties.
func (h *CatalogHandler) ListSpecialtiesHandler(c *gin.Context) {
	specialties, err := h.Service.GetSpecialties(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list specialties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, specialties)
}

// ListServicesHandler handles GET /api/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.GetServices(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListDoctorServicesHandler handles GET /api/doctor-services.
func (h *CatalogHandler) ListDoctorServicesHandler(c *gin.Context) {
	links, err := h.Service.GetDoctorServices(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list doctor services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, links)
}
