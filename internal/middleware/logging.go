package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request before and after dispatch: method and URL
// on the way in, status code and elapsed wall-clock time on the way out. The
// after-line is written even when the handler chain ends in an error response.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("Request: %s %s", c.Request.Method, c.Request.URL.String())

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		log.Printf("Response status: %d | Time: %.4fs", c.Writer.Status(), elapsed.Seconds())
	}
}
