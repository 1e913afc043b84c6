package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ucopt/internal/api/models"
)

// ErrorHandler middleware recovers panics and turns them into the
// same error envelope handlers return for expected failures.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if err, ok := recovered.(string); ok {
			msg = err
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: msg},
		})
		c.Abort()
	})
}
