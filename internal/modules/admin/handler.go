package admin

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/vegamovies/core/internal/middleware"
	"github.com/vegamovies/core/internal/pkg/response"
)

// Handler exposes the admin session endpoints.
type Handler struct {
	svc    *Service
	secure bool // Secure cookie flag; on in production
}

func NewHandler(svc *Service, secureCookies bool) *Handler {
	return &Handler{svc: svc, secure: secureCookies}
}

// RegisterRoutes mounts the admin auth routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/admin")

	a.POST("/login", h.login)
	a.GET("/me", authMW, h.me)
	a.POST("/logout", authMW, h.logout)
}

// login POST /admin/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Email and password required")
		return
	}

	token, err := h.svc.Login(dto.Email, dto.Password)
	if err != nil {
		switch {
		case errors.Is(err, errMissingCredentials):
			response.BadRequest(c, "Email and password required")
		case errors.Is(err, errInvalidCredentials):
			response.Unauthorized(c, "Invalid admin credentials")
		default:
			response.InternalError(c, "Login failed")
		}
		return
	}

	maxAge := int(h.svc.TokenTTL().Seconds())
	c.SetCookie(middleware.AdminCookieName, token, maxAge, "/", "", h.secure, true)
	response.OK(c, gin.H{"message": "Admin logged in successfully"})
}

// me GET /admin/me  [auth]
func (h *Handler) me(c *gin.Context) {
	response.OK(c, gin.H{
		"admin": gin.H{
			"email": middleware.AdminEmail(c),
			"role":  middleware.AdminRole(c),
		},
	})
}

// logout POST /admin/logout  [auth]
func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", h.secure, true)
	response.OK(c, gin.H{"message": "Admin logged out successfully"})
}
