package handlers

import (
	"errors"
	"net/http"

	"clinic/services/availability"
	"clinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the read path of the booking engine.
type AvailabilityHandler struct {
	Engine availability.AvailabilityEngine
}

func NewAvailabilityHandler(engine availability.AvailabilityEngine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetAvailabilityHandler handles GET /api/availability.
// The period is either ?month=YYYY-MM or an explicit ?date_from/?date_to pair.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID := c.Query("doctor_id")
	if doctorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id required"})
		return
	}

	month := c.Query("month")
	from, to, err := availability.ResolvePeriod(month, c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days, err := h.Engine.ComputeAvailability(c.Request.Context(), doctorID, from, to)
	if err != nil {
		var inputErr *availability.InputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": inputErr.Error()})
			return
		}
		logger.Error("availability computation failed", zap.String("doctorID", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR", "details": err.Error()})
		return
	}

	resp := gin.H{
		"doctor_id": doctorID,
		"date_from": from,
		"date_to":   to,
		"days":      days,
	}
	if month != "" {
		resp["month"] = month
	}
	c.JSON(http.StatusOK, resp)
}
