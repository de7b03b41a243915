package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vegamovies/core/internal/pkg/jwt"
	"github.com/vegamovies/core/internal/pkg/response"
)

const (
	// AdminCookieName carries the signed admin session token.
	AdminCookieName = "admin_token"

	contextKeyAdminEmail = "admin_email"
	contextKeyAdminRole  = "admin_role"
)

// RequireAdmin enforces the cookie-based admin gate: a missing, malformed or
// expired token yields 401; a valid token with the wrong role yields 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractAdminToken(c)
		if token == "" {
			response.Unauthorized(c, "Admin token missing")
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired admin token")
			return
		}
		if claims.Role != "admin" {
			response.Forbidden(c, "Admin access only")
			return
		}

		c.Set(contextKeyAdminEmail, claims.Email)
		c.Set(contextKeyAdminRole, claims.Role)
		c.Next()
	}
}

// AdminEmail returns the authenticated admin's email from context.
func AdminEmail(c *gin.Context) string {
	v, _ := c.Get(contextKeyAdminEmail)
	email, _ := v.(string)
	return email
}

// AdminRole returns the authenticated admin's role from context.
func AdminRole(c *gin.Context) string {
	v, _ := c.Get(contextKeyAdminRole)
	role, _ := v.(string)
	return role
}

func extractAdminToken(c *gin.Context) string {
	if raw, err := c.Cookie(AdminCookieName); err == nil {
		if token := strings.TrimSpace(raw); token != "" {
			return token
		}
	}
	// Bearer fallback for non-browser clients.
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
