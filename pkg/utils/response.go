package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONData sends a row or array as-is with HTTP 200.
func JSONData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// JSONCreated sends a newly created row with HTTP 201.
func JSONCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// JSONMessage sends a {message} success response.
func JSONMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// JSONError sends a {error} response with the given status code.
func JSONError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
