package middleware

import "github.com/gin-gonic/gin"

// NoCache marks responses as uncacheable so edited HTML pages show up on the
// next reload without a hard refresh.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate, max-age=0, private")
		h.Set("X-Accel-Expires", "0")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		c.Next()
	}
}
