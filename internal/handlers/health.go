package handlers

import (
	"net/http"
	"time"

	"github.com/demoproject/demo-app/internal/models"
	"github.com/gin-gonic/gin"
)

// ServiceName identifies this service in health responses
const ServiceName = "demo-app"

// PingHandler handles the /ping endpoint for health checks
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /ping [get]
func PingHandler(c *gin.Context) {
	response := models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Service:   ServiceName,
	}

	c.JSON(http.StatusOK, response)
}
