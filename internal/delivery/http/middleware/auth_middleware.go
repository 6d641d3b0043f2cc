package middleware

import (
	"net/http"
	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/auth"
	"portfolio-contact-backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuth requires a valid admin bearer token
func AdminAuth(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !issuer.Enabled() {
			response.Error(c, http.StatusServiceUnavailable, "Admin access is disabled", nil)
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			logger.Log.Warn("Admin token rejected", "ip", c.ClientIP(), "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		if claims.Role != auth.RoleAdmin {
			response.Error(c, http.StatusForbidden, "Admin access required", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeySubject), claims.Subject)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}
