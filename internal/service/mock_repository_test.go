package service

import (
	"context"

	"tour-optimizer-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockLocationRepository is a mock implementation of the LocationStore interface
type MockLocationRepository struct {
	mock.Mock
}

// ListLocations implements LocationRepository.
func (m *MockLocationRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Location), args.Error(1)
}

// FindNearestLocation implements LocationStore.
func (m *MockLocationRepository) FindNearestLocation(ctx context.Context, lat, lon float64) (*models.NearbyLocation, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(*models.NearbyLocation), args.Error(1)
}
