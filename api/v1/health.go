package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health check
const Version = "1.0.0"

// HealthCheck handles the health check endpoint
func HealthCheck(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": service,
			"version": Version,
		})
	}
}
