package handler

import (
	"net/http"

	_ "tour-optimizer-api/docs"
	"tour-optimizer-api/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every HTTP route of the service. limiter guards the
// endpoints that start a solve.
func NewRouter(tour *TourHandler, locations *LocationHandler, limiter *SolveLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), metrics.Middleware())
	r.SetHTMLTemplate(Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", limiter.Page(), tour.Index)
	r.GET("/tour", limiter.JSON(), tour.Tour)
	r.GET("/locations", locations.ListLocations)
	r.GET("/locations/nearest", locations.NearestLocation)

	return r
}
