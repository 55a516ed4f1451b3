// Package response renders the API envelope every endpoint shares:
// {"success":true,"data":...} on success and
// {"success":false,"error":{"code","message"}} on failure, where code is
// one of the documented machine-readable error codes (INVALID_INPUT,
// NOT_FOUND, AUTH_FAILURE, UNAUTHORIZED, FORBIDDEN, CONFLICT,
// INTERNAL_ERROR).
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails adds a details payload, used for per-field
// validation errors.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
