package handlers

import (
	"net/http"

	"github.com/demoproject/demo-app/internal/services"
	"github.com/gin-gonic/gin"
)

// DemoHandler handles HTTP requests for the demo payload
type DemoHandler struct {
	demoService *services.DemoService
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(demoService *services.DemoService) *DemoHandler {
	return &DemoHandler{
		demoService: demoService,
	}
}

// GetDemo handles GET /
// @Summary Demo payload
// @Description Returns a greeting, the current UTC time and the linked utility library version
// @Tags demo
// @Produce json
// @Success 200 {object} models.DemoResponse
// @Router / [get]
func (h *DemoHandler) GetDemo(c *gin.Context) {
	c.JSON(http.StatusOK, h.demoService.BuildResponse())
}
