package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"tour-optimizer-api/internal/models"
	"tour-optimizer-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LocationService is the service interface behind the location endpoints
type LocationService interface {
	ListLocations(context.Context) ([]models.Location, error)
	NearestLocation(context.Context, float64, float64) (*models.NearbyLocation, error)
}

// LocationHandler handles delivery point requests
type LocationHandler struct {
	service LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// ListLocations handles GET /locations requests
//
//	@Summary	List delivery points
//	@Tags		locations
//	@Produce	json
//	@Success	200	{array}		models.Location
//	@Failure	500	{object}	map[string]string
//	@Router		/locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.service.ListLocations(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("cannot list locations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// NearestLocation handles GET /locations/nearest requests
//
//	@Summary	Find the delivery point closest to a coordinate
//	@Tags		locations
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude"
//	@Param		lon	query		number	true	"Longitude"
//	@Success	200	{object}	models.NearbyLocation
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/locations/nearest [get]
func (h *LocationHandler) NearestLocation(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	location, err := h.service.NearestLocation(c.Request.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		log.Error().Err(err).Msg("cannot find nearest location")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no delivery points available"})
		return
	}

	c.JSON(http.StatusOK, location)
}
