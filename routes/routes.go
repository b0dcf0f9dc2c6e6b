package routes

import (
	"net/http"
	"strings"
	"time"

	"clinic/config"
	"clinic/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the availability read path.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability", hb.GetAvailabilityHandler)
	}
}

// RegisterAppointmentRoutes registers the booking write path.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/appointments", hb.CreateAppointmentHandler)
	}
}

// RegisterClientRoutes registers patient profile endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/user/:user_id", hb.GetClientHandler)
		api.POST("/user", hb.RegisterClientHandler)
		api.PUT("/user/:user_id", hb.UpdateClientHandler)
	}
}

// RegisterCatalogRoutes registers catalog listings.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/doctors", hb.ListDoctorsHandler)
		api.GET("/specialties", hb.ListSpecialtiesHandler)
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/doctor-services", hb.ListDoctorServicesHandler)
	}
}

// RegisterDebugRoutes registers diagnostic endpoints.
func RegisterDebugRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/debug")
	{
		api.GET("/db", hb.DebugDBHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig()))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterDebugRoutes(r, hb)
}

// corsConfig builds the CORS policy from ALLOWED_ORIGINS. An empty
// allow-list opens the API to every origin without credentials.
func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	var origins []string
	for _, o := range strings.Split(config.AppConfig.AllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
