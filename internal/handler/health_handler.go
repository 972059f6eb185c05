package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness with a fixed payload
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
