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

type cardIdentifierRepository struct {
	db *gorm.DB
}

// NewCardIdentifierRepository is the constructor for cardIdentifierRepository.
func NewCardIdentifierRepository(db *gorm.DB) repository.CardIdentifierRepository {
	return &cardIdentifierRepository{db: db}
}

// Create inserts a new identifier row.
func (repo *cardIdentifierRepository) Create(ctx context.Context, identifier *entity.CardIdentifier) error {
	if identifier.ID == uuid.Nil {
		identifier.ID = uuid.New()
	}

	identifierM := fromCardIdentifierDomain(identifier)
	if err := repo.db.WithContext(ctx).Create(identifierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateIdentifier
		}

		return errors.Wrap(err, "failed to create card identifier")
	}

	return nil
}

// FindByCode looks the code up on the primary so freshly generated codes validate immediately.
func (repo *cardIdentifierRepository) FindByCode(ctx context.Context, restaurantID uuid.UUID, code string) (*entity.CardIdentifier, error) {
	var identifierM model.CardIdentifierModel
	err := onPrimary(repo.db.WithContext(ctx)).
		Where("restaurant_id = ? AND code = ?", restaurantID, code).
		First(&identifierM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentifierNotFound
		}

		return nil, errors.Wrap(err, "failed to find card identifier by code")
	}

	return toCardIdentifierDomain(&identifierM), nil
}

// FindActiveByCard returns the card's active identifier.
func (repo *cardIdentifierRepository) FindActiveByCard(ctx context.Context, cardID uuid.UUID) (*entity.CardIdentifier, error) {
	var identifierM model.CardIdentifierModel
	err := repo.db.WithContext(ctx).
		Where("card_id = ? AND is_active = ?", cardID, true).
		First(&identifierM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentifierNotFound
		}

		return nil, errors.Wrap(err, "failed to find active card identifier")
	}

	return toCardIdentifierDomain(&identifierM), nil
}

// DeactivateActiveForCard marks the active identifier as rotated.
func (repo *cardIdentifierRepository) DeactivateActiveForCard(ctx context.Context, cardID uuid.UUID, rotatedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CardIdentifierModel{}).
		Where("card_id = ? AND is_active = ?", cardID, true).
		Updates(map[string]any{
			"is_active":  false,
			"rotated_at": rotatedAt,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate card identifier")
	}

	return result.RowsAffected, nil
}

// RecordUsage increments the usage counter in SQL so concurrent scans never lose a count.
// The UPDATE shifts last_used_at into previous_used_at, and SET expressions read the
// row as it was, so a scan that waited on another sees that scan's timestamp.
func (repo *cardIdentifierRepository) RecordUsage(ctx context.Context, id uuid.UUID, usedAt time.Time) (*repository.UsageRecord, error) {
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.CardIdentifierModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"usage_count":      gorm.Expr("usage_count + 1"),
			"previous_used_at": gorm.Expr("last_used_at"),
			"last_used_at":     usedAt,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to record card identifier usage")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrIdentifierNotFound
	}

	// The row stays locked by the UPDATE until commit, so this reads our own write.
	var usage struct {
		UsageCount     int64
		PreviousUsedAt *time.Time
	}
	read := onPrimary(db).
		Model(&model.CardIdentifierModel{}).
		Select("usage_count", "previous_used_at").
		Where("id = ?", id).
		Scan(&usage)
	if read.Error != nil {
		return nil, errors.Wrap(read.Error, "failed to read card identifier usage")
	}
	if read.RowsAffected == 0 {
		return nil, repository.ErrIdentifierNotFound
	}

	return &repository.UsageRecord{Count: usage.UsageCount, PreviousUsedAt: usage.PreviousUsedAt}, nil
}

// ListActiveByRestaurant returns the restaurant's active identifiers.
func (repo *cardIdentifierRepository) ListActiveByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.CardIdentifier, error) {
	var identifierModels []*model.CardIdentifierModel
	err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("created_at ASC").
		Find(&identifierModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active card identifiers")
	}

	identifiers := make([]*entity.CardIdentifier, 0, len(identifierModels))
	for _, identifierM := range identifierModels {
		identifiers = append(identifiers, toCardIdentifierDomain(identifierM))
	}

	return identifiers, nil
}

// ListStaleInactiveIDs pages past the keep newest inactive identifiers.
func (repo *cardIdentifierRepository) ListStaleInactiveIDs(ctx context.Context, restaurantID uuid.UUID, keep, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.CardIdentifierModel{}).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, false).
		Order("created_at DESC").
		Order("id DESC").
		Offset(keep).
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stale card identifiers")
	}

	return ids, nil
}

// DeleteInactiveByIDs deletes identifiers, never touching active ones.
func (repo *cardIdentifierRepository) DeleteInactiveByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, false).
		Delete(&model.CardIdentifierModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete card identifiers")
	}

	return result.RowsAffected, nil
}

func toCardIdentifierDomain(data *model.CardIdentifierModel) *entity.CardIdentifier {
	return &entity.CardIdentifier{
		ID:           data.ID,
		CardID:       data.CardID,
		RestaurantID: data.RestaurantID,
		Code:         data.Code,
		Signature:    data.Signature,
		CodeVersion:  data.CodeVersion,
		IsActive:     data.IsActive,
		UsageCount:   data.UsageCount,
		LastUsedAt:   data.LastUsedAt,
		ExpiresAt:    data.ExpiresAt,
		RotatedAt:    data.RotatedAt,
		CreatedAt:    data.CreatedAt,
	}
}

func fromCardIdentifierDomain(data *entity.CardIdentifier) *model.CardIdentifierModel {
	return &model.CardIdentifierModel{
		ID:           data.ID,
		CardID:       data.CardID,
		RestaurantID: data.RestaurantID,
		Code:         data.Code,
		Signature:    data.Signature,
		CodeVersion:  data.CodeVersion,
		IsActive:     data.IsActive,
		UsageCount:   data.UsageCount,
		LastUsedAt:   data.LastUsedAt,
		ExpiresAt:    data.ExpiresAt,
		RotatedAt:    data.RotatedAt,
		CreatedAt:    data.CreatedAt,
	}
}
