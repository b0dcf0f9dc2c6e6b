package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Availability (read path).
	GetAvailabilityHandler gin.HandlerFunc

	// Appointments (write path).
	CreateAppointmentHandler gin.HandlerFunc

	// Patient profiles.
	GetClientHandler      gin.HandlerFunc
	RegisterClientHandler gin.HandlerFunc
	UpdateClientHandler   gin.HandlerFunc

	// Catalog.
	ListDoctorsHandler        gin.HandlerFunc
	ListSpecialtiesHandler    gin.HandlerFunc
	ListServicesHandler       gin.HandlerFunc
	ListDoctorServicesHandler gin.HandlerFunc

	// Diagnostics.
	DebugDBHandler gin.HandlerFunc
}
