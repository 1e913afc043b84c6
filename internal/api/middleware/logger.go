package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger middleware records one line per request, matching the plain
// log.Printf style used throughout internal/data/cache.go -- no
// structured/leveled logging framework is introduced here either.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Printf("api: %s %s %d %s", c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
