package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PayloadTooLarge is the detail reported when a body exceeds limit bytes.
func PayloadTooLarge(limit int64) string {
	return fmt.Sprintf("Payload too large. Maximum size is %d bytes", limit)
}

// PayloadLimit rejects requests whose declared Content-Length exceeds limit
// and caps the body of the rest, so undeclared lengths fail while reading.
func PayloadLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"detail": PayloadTooLarge(limit)})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
