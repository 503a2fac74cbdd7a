package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse writes the uniform response envelope every marketplace
// endpoint shares: the HTTP status echoed in the body, a short message and
// the endpoint's data payload (a rollup response or an inspect result).
func JSONResponse(c *gin.Context, status int, data any, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	}
	c.JSON(status, body)
}
