package handler

import (
	"context"
	"errors"
	"net/http"

	"tour-optimizer-api/internal/models"
	"tour-optimizer-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TourPlanner is the service interface behind the tour endpoints.
type TourPlanner interface {
	Plan(context.Context) (*models.TourResult, error)
}

// TourHandler serves the solver page and its JSON counterpart
type TourHandler struct {
	service TourPlanner
}

// NewTourHandler creates a new tour handler
func NewTourHandler(svc TourPlanner) *TourHandler {
	return &TourHandler{service: svc}
}

// Index handles GET / requests
//
// The page is rendered on every request: one solve per page load. A solver
// failure is a normal outcome and is shown as a banner.
func (h *TourHandler) Index(c *gin.Context) {
	result, err := h.service.Plan(c.Request.Context())
	if err != nil {
		status := http.StatusOK
		if !errors.Is(err, service.ErrOptimizationFailed) {
			log.Error().Err(err).Msg("cannot plan tour")
			status = http.StatusInternalServerError
		}
		c.HTML(status, "index.html", gin.H{"Result": nil})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Result": result,
		"Stops":  openStops(result),
	})
}

// Tour handles GET /tour requests
//
//	@Summary		Solve the delivery tour
//	@Description	Runs one bounded search over the delivery points and returns the visiting order.
//	@Tags			tour
//	@Produce		json
//	@Success		200	{object}	models.TourResult
//	@Failure		422	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/tour [get]
func (h *TourHandler) Tour(c *gin.Context) {
	result, err := h.service.Plan(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrOptimizationFailed) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "optimization failed"})
			return
		}
		log.Error().Err(err).Msg("cannot plan tour")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func openStops(r *models.TourResult) []models.Location {
	if len(r.Stops) < 2 {
		return r.Stops
	}
	return r.Stops[:len(r.Stops)-1]
}
