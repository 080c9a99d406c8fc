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

type tierRepository struct {
	db *gorm.DB
}

// NewTierRepository is the constructor for tierRepository.
func NewTierRepository(db *gorm.DB) repository.TierRepository {
	return &tierRepository{db: db}
}

// Create persists a tier. Level and default uniqueness are enforced by indexes.
func (repo *tierRepository) Create(ctx context.Context, tier *entity.LoyaltyTier) error {
	if tier.ID == uuid.Nil {
		tier.ID = uuid.New()
	}

	tierM := fromTierDomain(tier)
	if err := repo.db.WithContext(ctx).Create(tierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTierLevel
		}

		return errors.Wrap(err, "failed to create loyalty tier")
	}

	tier.CreatedAt = tierM.CreatedAt
	tier.UpdatedAt = tierM.UpdatedAt

	return nil
}

// FindByID retrieves a tier.
func (repo *tierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyTier, error) {
	var tierM model.LoyaltyTierModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&tierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTierNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty tier by id")
	}

	return toTierDomain(&tierM), nil
}

// ListByRestaurant returns the restaurant's ladder ordered by level.
func (repo *tierRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.LoyaltyTier, error) {
	var tierModels []*model.LoyaltyTierModel
	err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("level ASC").
		Find(&tierModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loyalty tiers")
	}

	tiers := make([]*entity.LoyaltyTier, 0, len(tierModels))
	for _, tierM := range tierModels {
		tiers = append(tiers, toTierDomain(tierM))
	}

	return tiers, nil
}

// FindDefault retrieves the restaurant's default tier.
func (repo *tierRepository) FindDefault(ctx context.Context, restaurantID uuid.UUID) (*entity.LoyaltyTier, error) {
	var tierM model.LoyaltyTierModel
	err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_default = ?", restaurantID, true).
		First(&tierM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTierNotFound
		}

		return nil, errors.Wrap(err, "failed to find default loyalty tier")
	}

	return toTierDomain(&tierM), nil
}

// Delete removes a tier.
func (repo *tierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LoyaltyTierModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete loyalty tier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTierNotFound
	}

	return nil
}

// CreateHistory appends a tier change record.
func (repo *tierRepository) CreateHistory(ctx context.Context, history *entity.TierUpgradeHistory) error {
	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}

	historyM := &model.TierUpgradeHistoryModel{
		ID:           history.ID,
		CardID:       history.CardID,
		FromTierID:   history.FromTierID,
		ToTierID:     history.ToTierID,
		TriggerType:  string(history.TriggerType),
		TriggerValue: history.TriggerValue,
		Reason:       history.Reason,
		UpgradedBy:   history.UpgradedBy,
		UpgradedAt:   history.UpgradedAt,
	}
	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		return errors.Wrap(err, "failed to create tier upgrade history")
	}

	return nil
}

// ListHistoryByCard returns tier changes, newest first.
func (repo *tierRepository) ListHistoryByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.TierUpgradeHistory, error) {
	var historyModels []*model.TierUpgradeHistoryModel
	err := repo.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("upgraded_at DESC").
		Find(&historyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tier upgrade history")
	}

	histories := make([]*entity.TierUpgradeHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		histories = append(histories, &entity.TierUpgradeHistory{
			ID:           historyM.ID,
			CardID:       historyM.CardID,
			FromTierID:   historyM.FromTierID,
			ToTierID:     historyM.ToTierID,
			TriggerType:  entity.TierTrigger(historyM.TriggerType),
			TriggerValue: historyM.TriggerValue,
			Reason:       historyM.Reason,
			UpgradedBy:   historyM.UpgradedBy,
			UpgradedAt:   historyM.UpgradedAt,
		})
	}

	return histories, nil
}

func toTierDomain(data *model.LoyaltyTierModel) *entity.LoyaltyTier {
	return &entity.LoyaltyTier{
		ID:                data.ID,
		RestaurantID:      data.RestaurantID,
		Name:              data.Name,
		Level:             data.Level,
		MinPointsRequired: data.MinPointsRequired,
		PointsMultiplier:  data.PointsMultiplier,
		IsDefault:         data.IsDefault,
		IsActive:          data.IsActive,
		Perks:             data.Perks,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromTierDomain(data *entity.LoyaltyTier) *model.LoyaltyTierModel {
	return &model.LoyaltyTierModel{
		ID:                data.ID,
		RestaurantID:      data.RestaurantID,
		Name:              data.Name,
		Level:             data.Level,
		MinPointsRequired: data.MinPointsRequired,
		PointsMultiplier:  data.PointsMultiplier,
		IsDefault:         data.IsDefault,
		IsActive:          data.IsActive,
		Perks:             data.Perks,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
