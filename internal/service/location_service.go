package service

import (
	"context"
	"errors"
	"fmt"

	"tour-optimizer-api/internal/dataset"
	"tour-optimizer-api/internal/models"
)

// ErrInvalidCoordinate is returned for latitudes or longitudes outside WGS-84 ranges.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// LocationRepository is the source of delivery points, depot first.
type LocationRepository interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
}

// LocationStore is a LocationRepository that can also answer nearest-point queries.
type LocationStore interface {
	LocationRepository
	// FindNearestLocation returns the geodesically closest point, or nil when there are none.
	FindNearestLocation(ctx context.Context, lat, lon float64) (*models.NearbyLocation, error)
}

// LocationService answers questions about the delivery points themselves.
type LocationService struct {
	repo LocationStore
}

// NewLocationService creates a new location service
func NewLocationService(repo LocationStore) *LocationService {
	return &LocationService{repo: repo}
}

// ListLocations returns all delivery points in dataset order
func (s *LocationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}
	return locations, nil
}

// NearestLocation finds the delivery point closest to the given coordinates.
// It returns nil without error when there are no delivery points.
func (s *LocationService) NearestLocation(ctx context.Context, lat, lon float64) (*models.NearbyLocation, error) {
	if err := dataset.ValidateCoordinate(lat, lon); err != nil {
		return nil, fmt.Errorf("service: %w: %w", ErrInvalidCoordinate, err)
	}

	location, err := s.repo.FindNearestLocation(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest location: %w", err)
	}
	return location, nil
}
