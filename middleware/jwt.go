package middleware

import (
	"net/http"
	"strings"

	"starmaker/coaching-api/security"

	"github.com/gin-gonic/gin"
)

// NewJWTMiddleware returns a middleware that expects a session token in the
// Authorization header ("Bearer <token>"). Valid tokens of any role pass,
// endpoints that care about the role have to check it themselves or use
// RequireAdmin.
func NewJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":   false,
				"message":   "Access token required",
				"requestID": requestID,
			})
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":   false,
				"message":   "Access token required",
				"requestID": requestID,
			})
			return
		}

		claims, err := security.ParseToken(tokenStr)
		if err != nil || claims.Purpose != security.PurposeSession {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success":   false,
				"message":   "Invalid or expired token",
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects sessions whose role claim isn't admin. Must run after
// NewJWTMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		if c.GetString("role") != security.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success":   false,
				"message":   "Admin access required",
				"requestID": requestID,
			})
			return
		}

		c.Next()
	}
}
