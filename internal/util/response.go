package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response envelope used by every endpoint: {success, data} on success,
// {success, error} on failure. Clients key off `success` and `data`.

// SuccessResponse writes a success envelope with the given payload
func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// ErrorResponse writes a failure envelope carrying the error message
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// BadRequest writes a 400 failure envelope
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 failure envelope
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, message)
}

// Forbidden writes a 403 failure envelope
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, message)
}

// NotFound writes a 404 failure envelope
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}
