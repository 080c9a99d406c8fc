package postgres

import (
	"context"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// FindByID retrieves a restaurant with its signing configuration.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// Create persists a restaurant.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	if restaurant.ID == uuid.Nil {
		restaurant.ID = uuid.New()
	}

	restaurantM := fromRestaurantDomain(restaurant)
	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		return errors.Wrap(err, "failed to create restaurant")
	}

	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	return &entity.Restaurant{
		ID:                data.ID,
		Name:              data.Name,
		QRCodeSecret:      data.QRCodeSecret,
		QRCodeVersion:     data.QRCodeVersion,
		PointsPerPurchase: data.PointsPerPurchase,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	return &model.RestaurantModel{
		ID:                data.ID,
		Name:              data.Name,
		QRCodeSecret:      data.QRCodeSecret,
		QRCodeVersion:     data.QRCodeVersion,
		PointsPerPurchase: data.PointsPerPurchase,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
