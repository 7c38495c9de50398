package handlers

import (
	"fmt"
	"net/http"

	"github.com/demoproject/demo-app/internal/models"
	"github.com/gin-gonic/gin"
)

// NotFoundHandler answers requests that match no route
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "Not Found",
		Message: fmt.Sprintf("No route for %s %s", c.Request.Method, c.Request.URL.Path),
	})
}
