package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers so the portfolio front-end can post the contact form.
//
// Only the configured front-end origin is allowed, plus localhost origins when
// allowLocalhost is set (development mode).
func CORSMiddleware(frontendURL string, allowLocalhost bool) gin.HandlerFunc {
	allowed := map[string]bool{}
	if frontendURL != "" {
		allowed[strings.TrimRight(frontendURL, "/")] = true
		// Accept both apex and www variants of the production domain
		if rest, ok := strings.CutPrefix(frontendURL, "https://www."); ok {
			allowed["https://"+rest] = true
		} else if rest, ok := strings.CutPrefix(frontendURL, "https://"); ok {
			allowed["https://www."+rest] = true
		}
	}

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		isAllowed := origin == "" || allowed[origin] || (allowLocalhost && devOrigins[origin])

		// Only set headers if origin is allowed; the browser blocks the rest
		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
