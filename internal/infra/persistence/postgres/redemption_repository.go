package postgres

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{db: db}
}

// Create persists a redemption.
func (repo *redemptionRepository) Create(ctx context.Context, redemption *entity.RewardRedemption) error {
	if redemption.ID == uuid.Nil {
		redemption.ID = uuid.New()
	}

	redemptionM := fromRedemptionDomain(redemption)
	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRedemption
		}

		return errors.Wrap(err, "failed to create reward redemption")
	}

	redemption.CreatedAt = redemptionM.CreatedAt
	redemption.UpdatedAt = redemptionM.UpdatedAt

	return nil
}

// FindByID retrieves a redemption.
func (repo *redemptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RewardRedemption, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find reward redemption by id")
}

// LockByID retrieves a redemption and locks its row.
func (repo *redemptionRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.RewardRedemption, error) {
	return repo.first(forUpdate(repo.db.WithContext(ctx)).Where("id = ?", id), "failed to lock reward redemption")
}

// LockByCode retrieves a redemption by its counter code and locks its row.
func (repo *redemptionRepository) LockByCode(ctx context.Context, code string) (*entity.RewardRedemption, error) {
	return repo.first(forUpdate(repo.db.WithContext(ctx)).Where("code = ?", code), "failed to lock reward redemption by code")
}

func (repo *redemptionRepository) first(query *gorm.DB, failure string) (*entity.RewardRedemption, error) {
	var redemptionM model.RewardRedemptionModel
	if err := query.First(&redemptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	return toRedemptionDomain(&redemptionM), nil
}

// LockPendingByCardAndReward locks every unused redemption of the reward on the card.
func (repo *redemptionRepository) LockPendingByCardAndReward(ctx context.Context, cardID, rewardID uuid.UUID) ([]*entity.RewardRedemption, error) {
	var redemptionModels []*model.RewardRedemptionModel
	err := forUpdate(repo.db.WithContext(ctx)).
		Where("card_id = ? AND reward_id = ? AND status = ?", cardID, rewardID, string(entity.RedemptionStatusPending)).
		Find(&redemptionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock pending reward redemptions")
	}

	redemptions := make([]*entity.RewardRedemption, 0, len(redemptionModels))
	for _, redemptionM := range redemptionModels {
		redemptions = append(redemptions, toRedemptionDomain(redemptionM))
	}

	return redemptions, nil
}

// Update writes the mutable status columns.
func (repo *redemptionRepository) Update(ctx context.Context, redemption *entity.RewardRedemption) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RewardRedemptionModel{}).
		Where("id = ?", redemption.ID).
		Updates(map[string]any{
			"status":        string(redemption.Status),
			"used_at":       redemption.UsedAt,
			"used_by":       redemption.UsedBy,
			"cancelled_at":  redemption.CancelledAt,
			"cancel_reason": redemption.CancelReason,
			"updated_at":    redemption.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reward redemption")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRedemptionNotFound
	}

	return nil
}

// ListExpiredPendingIDs finds pending redemptions past their expiry.
func (repo *redemptionRepository) ListExpiredPendingIDs(ctx context.Context, restaurantID *uuid.UUID, now time.Time, limit int) ([]uuid.UUID, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.RewardRedemptionModel{}).
		Where("status = ? AND expires_at <= ?", string(entity.RedemptionStatusPending), now)
	if restaurantID != nil {
		query = query.Where("restaurant_id = ?", *restaurantID)
	}

	var ids []uuid.UUID
	if err := query.Order("expires_at ASC").Limit(limit).Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expired reward redemptions")
	}

	return ids, nil
}

func toRedemptionDomain(data *model.RewardRedemptionModel) *entity.RewardRedemption {
	return &entity.RewardRedemption{
		ID:           data.ID,
		CardID:       data.CardID,
		RewardID:     data.RewardID,
		RestaurantID: data.RestaurantID,
		PointsSpent:  data.PointsSpent,
		Code:         data.Code,
		Status:       entity.RedemptionStatus(data.Status),
		ExpiresAt:    data.ExpiresAt,
		UsedAt:       data.UsedAt,
		UsedBy:       data.UsedBy,
		CancelledAt:  data.CancelledAt,
		CancelReason: data.CancelReason,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromRedemptionDomain(data *entity.RewardRedemption) *model.RewardRedemptionModel {
	return &model.RewardRedemptionModel{
		ID:           data.ID,
		CardID:       data.CardID,
		RewardID:     data.RewardID,
		RestaurantID: data.RestaurantID,
		PointsSpent:  data.PointsSpent,
		Code:         data.Code,
		Status:       string(data.Status),
		ExpiresAt:    data.ExpiresAt,
		UsedAt:       data.UsedAt,
		UsedBy:       data.UsedBy,
		CancelledAt:  data.CancelledAt,
		CancelReason: data.CancelReason,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
