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

type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(db *gorm.DB) repository.RewardRepository {
	return &rewardRepository{db: db}
}

// Create persists a reward.
func (repo *rewardRepository) Create(ctx context.Context, reward *entity.Reward) error {
	if reward.ID == uuid.Nil {
		reward.ID = uuid.New()
	}

	rewardM := fromRewardDomain(reward)
	if err := repo.db.WithContext(ctx).Create(rewardM).Error; err != nil {
		return errors.Wrap(err, "failed to create reward")
	}

	reward.CreatedAt = rewardM.CreatedAt
	reward.UpdatedAt = rewardM.UpdatedAt

	return nil
}

// FindByID retrieves a reward.
func (repo *rewardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find reward by id")
}

// LockByID retrieves a reward and locks its row.
func (repo *rewardRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	return repo.first(forUpdate(repo.db.WithContext(ctx)).Where("id = ?", id), "failed to lock reward")
}

func (repo *rewardRepository) first(query *gorm.DB, failure string) (*entity.Reward, error) {
	var rewardM model.RewardModel
	if err := query.First(&rewardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	return toRewardDomain(&rewardM), nil
}

// ReserveUnit takes one unit of stock if any remains.
func (repo *rewardRepository) ReserveUnit(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RewardModel{}).
		Where("id = ? AND (quantity IS NULL OR quantity_redeemed < quantity)", id).
		Update("quantity_redeemed", gorm.Expr("quantity_redeemed + 1"))
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to reserve reward unit")
	}

	return result.RowsAffected == 1, nil
}

// ReleaseUnit returns one unit of stock.
func (repo *rewardRepository) ReleaseUnit(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.RewardModel{}).
		Where("id = ? AND quantity_redeemed > 0", id).
		Update("quantity_redeemed", gorm.Expr("quantity_redeemed - 1")).Error
	if err != nil {
		return errors.Wrap(err, "failed to release reward unit")
	}

	return nil
}

// ListCrossedThreshold returns active rewards that became affordable moving from one balance to another.
func (repo *rewardRepository) ListCrossedThreshold(ctx context.Context, restaurantID uuid.UUID, from, to int64) ([]*entity.Reward, error) {
	if to <= from {
		return nil, nil
	}

	var rewardModels []*model.RewardModel
	err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ? AND points_required > ? AND points_required <= ?", restaurantID, true, from, to).
		Order("points_required ASC").
		Find(&rewardModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rewards crossing threshold")
	}

	rewards := make([]*entity.Reward, 0, len(rewardModels))
	for _, rewardM := range rewardModels {
		rewards = append(rewards, toRewardDomain(rewardM))
	}

	return rewards, nil
}

func toRewardDomain(data *model.RewardModel) *entity.Reward {
	return &entity.Reward{
		ID:               data.ID,
		RestaurantID:     data.RestaurantID,
		Name:             data.Name,
		Description:      data.Description,
		PointsRequired:   data.PointsRequired,
		Quantity:         data.Quantity,
		QuantityRedeemed: data.QuantityRedeemed,
		MinTierLevel:     data.MinTierLevel,
		IsActive:         data.IsActive,
		ValidFrom:        data.ValidFrom,
		ValidUntil:       data.ValidUntil,
		RedeemDeadline:   data.RedeemDeadline,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromRewardDomain(data *entity.Reward) *model.RewardModel {
	return &model.RewardModel{
		ID:               data.ID,
		RestaurantID:     data.RestaurantID,
		Name:             data.Name,
		Description:      data.Description,
		PointsRequired:   data.PointsRequired,
		Quantity:         data.Quantity,
		QuantityRedeemed: data.QuantityRedeemed,
		MinTierLevel:     data.MinTierLevel,
		IsActive:         data.IsActive,
		ValidFrom:        data.ValidFrom,
		ValidUntil:       data.ValidUntil,
		RedeemDeadline:   data.RedeemDeadline,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
