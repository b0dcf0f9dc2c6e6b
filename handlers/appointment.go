package handlers

import (
	"errors"
	"net/http"

	"clinic/models"
	"clinic/services/booking"
	"clinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the booking write path.
type AppointmentHandler struct {
	Booking booking.BookingService
}

func NewAppointmentHandler(svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Booking: svc}
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	records, err := h.Booking.BookAppointment(c.Request.Context(), req)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		var cErr *booking.ConflictError
		if errors.As(err, &cErr) {
			c.JSON(http.StatusConflict, gin.H{"error": "CONFLICT"})
			return
		}
		logger.Error("booking failed", zap.String("doctorID", req.DoctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointments": records})
}
