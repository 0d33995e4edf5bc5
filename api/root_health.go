package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Star Maker Coaching Institute API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
