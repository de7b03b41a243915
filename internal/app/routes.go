package app

import (
	"github.com/gin-gonic/gin"
	"github.com/vegamovies/core/internal/middleware"
	"github.com/vegamovies/core/internal/modules/admin"
	"github.com/vegamovies/core/internal/modules/health"
	"github.com/vegamovies/core/internal/modules/movie"
	"github.com/vegamovies/core/internal/modules/setting"
	"github.com/vegamovies/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.RequireAdmin()

	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "🚀 Backend API running"})
	})
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	api := r.Group("/api")

	health.RegisterRoutes(api, a.store)

	admin.NewHandler(admin.NewService(a.cfg), !a.cfg.IsDev()).RegisterRoutes(api, authMW)
	movie.NewHandler(movie.NewService(a.store)).RegisterRoutes(api, authMW)
	setting.NewHandler(setting.NewService(a.store)).RegisterRoutes(api, authMW)
}
