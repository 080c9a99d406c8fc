package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantRepository reads restaurant configuration. Onboarding lives elsewhere;
// Create exists for provisioning and fixtures.
type RestaurantRepository interface {
	// FindByID returns ErrRestaurantNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	Create(ctx context.Context, restaurant *entity.Restaurant) error
}
