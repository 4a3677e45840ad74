// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/controller"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	controllers.Auth.RegisterRoutes(router)
	controllers.File.RegisterRoutes(router)
	controllers.Grant.RegisterRoutes(router)
	controllers.Admin.RegisterRoutes(router)
	controllers.Dashboard.RegisterRoutes(router)
	controllers.Dept.RegisterRoutes(router)

	return router
}
