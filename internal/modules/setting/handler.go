package setting

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/vegamovies/core/internal/middleware"
	"github.com/vegamovies/core/internal/pkg/response"
)

// Handler handles site setting HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts setting routes. Only the active-setting lookup is
// public; management is admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	s := rg.Group("/settings")

	s.GET("/active", h.getActive)
	s.GET("", authMW, h.listAll)
	s.POST("", authMW, h.create)
	s.PUT("/:id", authMW, h.update)
	s.PUT("/:id/activate", authMW, h.activate)
	s.DELETE("/:id", authMW, h.delete)
}

// create POST /settings  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreateSettingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &dto, middleware.AdminEmail(c))
	if err != nil {
		if errors.Is(err, ErrMissingTitle) {
			response.BadRequest(c, "siteTitle is required")
			return
		}
		response.InternalErrorWithError(c, "Failed to create site setting", err)
		return
	}

	response.Created(c, gin.H{
		"message": "Site setting created successfully",
		"data":    created,
	})
}

// getActive GET /settings/active
func (h *Handler) getActive(c *gin.Context) {
	active, err := h.svc.GetActive(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoActive) {
			response.NotFound(c, "No active site setting found")
			return
		}
		response.InternalErrorWithError(c, "Failed to fetch active site setting", err)
		return
	}
	response.OK(c, gin.H{"data": active})
}

// activate PUT /settings/:id/activate  [auth]
func (h *Handler) activate(c *gin.Context) {
	activated, err := h.svc.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			response.BadRequest(c, "Invalid setting id")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Site setting not found")
		default:
			response.InternalErrorWithError(c, "Failed to activate site setting", err)
		}
		return
	}

	response.OK(c, gin.H{
		"message": "Site setting activated successfully",
		"data":    activated,
	})
}

// update PUT /settings/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateSettingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto, middleware.AdminEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			response.BadRequest(c, "Invalid setting id")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Site setting not found")
		default:
			response.InternalErrorWithError(c, "Failed to update site setting", err)
		}
		return
	}

	response.OK(c, gin.H{
		"message": "Site setting updated successfully",
		"data":    updated,
	})
}

// delete DELETE /settings/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			response.BadRequest(c, "Invalid setting id")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Site setting not found")
		case errors.Is(err, ErrActiveSetting):
			response.Conflict(c, "Active site setting cannot be deleted. Deactivate it first.")
		default:
			response.InternalErrorWithError(c, "Failed to delete site setting", err)
		}
		return
	}

	response.OK(c, gin.H{"message": "Site setting deleted successfully"})
}

// listAll GET /settings  [auth]
func (h *Handler) listAll(c *gin.Context) {
	settings, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalErrorWithError(c, "Failed to fetch site settings", err)
		return
	}

	response.OK(c, gin.H{
		"count": len(settings),
		"data":  settings,
	})
}
