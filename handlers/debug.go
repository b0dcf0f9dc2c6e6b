package handlers

import (
	"context"
	"net/http"
	"time"

	"clinic/database"

	"github.com/gin-gonic/gin"
)

// DebugDBHandler handles GET /api/debug/db: pings both stores so operators
// can tell which side of the system is down.
func DebugDBHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoOK := database.MongoClient != nil && database.MongoClient.Ping(ctx, nil) == nil

	legacyOK := false
	if database.LegacyDB != nil {
		if sqlDB, err := database.LegacyDB.DB(); err == nil {
			legacyOK = sqlDB.PingContext(ctx) == nil
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     mongoOK && legacyOK,
		"mongo":  mongoOK,
		"legacy": legacyOK,
	})
}
