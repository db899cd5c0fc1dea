// Package middleware provides the gin middleware chain: JWT
// authentication, role gating, request logging and Prometheus metrics.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amrbashir/erp-system-sub001/internal/auth"
	"github.com/amrbashir/erp-system-sub001/internal/models"
)

const (
	// UserIDKey is the gin context key for the authenticated user ID.
	UserIDKey = "user_id"
	// UsernameKey is the gin context key for the authenticated username.
	UsernameKey = "username"
	// RoleKey is the gin context key for the authenticated user's role.
	RoleKey = "role"
	// OrgSlugKey is the gin context key for the token's organization slug.
	OrgSlugKey = "org_slug"
)

// GetUserID extracts the user ID from the gin context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetRole extracts the authenticated role from the gin context.
func GetRole(c *gin.Context) models.Role {
	return models.Role(c.GetString(RoleKey))
}

// RequireAuth validates the bearer token and pins it to the
// organization slug of the route. A valid token minted for a different
// organization is rejected: tenants never see each other's data.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		if claims.OrgSlug != c.Param("slug") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized for this organization"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Set(RoleKey, string(claims.Role))
		c.Set(OrgSlugKey, claims.OrgSlug)
		c.Next()
	}
}

// RequireRole gates a route on a role. Must run after RequireAuth.
// An unmet role is a recoverable, user-visible condition (403), not
// an authentication failure.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized"})
			return
		}
		c.Next()
	}
}
