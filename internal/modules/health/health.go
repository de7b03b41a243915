package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vegamovies/core/internal/database"
)

var processStart = time.Now()

// RegisterRoutes mounts the liveness probe. A failed store ping reports the
// service as degraded with a 503 so load balancers can pull the instance.
func RegisterRoutes(rg *gin.RouterGroup, store *database.Store) {
	rg.GET("/health", func(c *gin.Context) {
		dbOK := store.Ping(c.Request.Context()) == nil

		status := "ok"
		code := http.StatusOK
		if !dbOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"success":  dbOK,
			"status":   status,
			"database": dbOK,
			"uptime":   time.Since(processStart).Truncate(time.Second).String(),
		})
	})
}
