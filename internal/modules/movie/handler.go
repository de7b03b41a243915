package movie

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/vegamovies/core/internal/pkg/response"
)

// Handler handles movie HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts movie routes. Listing, single fetch and the
// notification feed are public; everything else sits behind the admin gate.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	m := rg.Group("/movie")

	m.GET("", h.list)
	m.GET("/dashboard", authMW, h.dashboard)
	m.GET("/notification", h.notifications)
	m.GET("/:id", h.getByID)
	m.POST("/create", authMW, h.create)
	m.DELETE("/delete", authMW, h.delete)
	m.PATCH("/update/:id", authMW, h.update)
}

// list GET /movie
func (h *Handler) list(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	movies, page, limit, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c, "Failed to fetch movies")
		return
	}

	response.OK(c, gin.H{
		"page":    page,
		"limit":   limit,
		"count":   len(movies),
		"hasMore": len(movies) == limit,
		"movies":  movies,
	})
}

// getByID GET /movie/:id
func (h *Handler) getByID(c *gin.Context) {
	m, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			response.BadRequest(c, "Invalid movie id")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Movie not found")
		default:
			response.InternalError(c, "Failed to fetch movie")
		}
		return
	}
	response.OK(c, gin.H{"movie": m})
}

// create POST /movie/create  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreateMovieDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.BadRequestH(c, gin.H{
				"message":  "Required fields missing",
				"required": RequiredCreateFields,
			})
		case errors.Is(err, ErrInvalidSlug):
			response.BadRequest(c, "Invalid slug format (lowercase & hyphen only)")
		case errors.Is(err, ErrSlugTaken):
			response.Conflict(c, "Movie with this slug already exists")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidQuality), errors.Is(err, ErrInvalidRating):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "Server error")
		}
		return
	}

	response.Created(c, gin.H{
		"message": "Movie created successfully",
		"movie":   m,
	})
}

// update PATCH /movie/update/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateMovieDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			response.BadRequest(c, "Invalid movie id")
		case errors.Is(err, ErrInvalidSlug):
			response.BadRequest(c, "Invalid slug format")
		case errors.Is(err, ErrSlugTaken):
			response.Conflict(c, "Movie with this slug already exists")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidQuality), errors.Is(err, ErrInvalidRating):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Movie not found")
		default:
			response.InternalError(c, "Failed to update movie")
		}
		return
	}

	response.OK(c, gin.H{
		"message": "Movie updated successfully",
		"movie":   m,
	})
}

// delete DELETE /movie/delete  [auth]  (id in body)
func (h *Handler) delete(c *gin.Context) {
	var dto DeleteMovieDTO
	if err := c.ShouldBindJSON(&dto); err != nil || dto.ID == "" {
		response.BadRequest(c, "Movie id is required in body")
		return
	}

	m, err := h.svc.Delete(c.Request.Context(), dto.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			response.BadRequest(c, "Invalid movie id")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Movie not found")
		default:
			response.InternalError(c, "Failed to delete movie")
		}
		return
	}

	response.OK(c, gin.H{
		"message": m.Title + " deleted successfully",
		"movieId": m.ID,
	})
}

// dashboard GET /movie/dashboard  [auth]
func (h *Handler) dashboard(c *gin.Context) {
	stats, recent, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to load dashboard data")
		return
	}
	response.OK(c, gin.H{
		"stats":        stats,
		"recentMovies": recent,
	})
}

// notifications GET /movie/notification
func (h *Handler) notifications(c *gin.Context) {
	feed, err := h.svc.Notifications(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch notifications")
		return
	}
	response.OK(c, gin.H{
		"total":       len(feed),
		"unreadCount": len(feed),
		"data":        feed,
	})
}
