package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request once the handler chain has finished.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		log.Printf("%s %s -> %d (%s, %d bytes)",
			c.Request.Method, path, c.Writer.Status(), time.Since(start).Round(time.Microsecond), c.Writer.Size())
		for _, e := range c.Errors {
			log.Printf("  error: %v", e.Err)
		}
	}
}
