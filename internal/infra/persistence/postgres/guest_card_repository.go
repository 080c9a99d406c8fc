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

type guestCardRepository struct {
	db *gorm.DB
}

// NewGuestCardRepository is the constructor for guestCardRepository.
func NewGuestCardRepository(db *gorm.DB) repository.GuestCardRepository {
	return &guestCardRepository{db: db}
}

// Create persists a new card.
func (repo *guestCardRepository) Create(ctx context.Context, card *entity.GuestCard) error {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}

	cardM := fromGuestCardDomain(card)
	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCard
		}

		return errors.Wrap(err, "failed to create guest card")
	}

	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

// FindByID retrieves a card without locking it.
func (repo *guestCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GuestCard, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find guest card by id")
}

// LockByID retrieves a card and holds its row lock until the transaction ends.
func (repo *guestCardRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.GuestCard, error) {
	return repo.first(forUpdate(repo.db.WithContext(ctx)).Where("id = ?", id), "failed to lock guest card")
}

// FindByUserAndRestaurant retrieves the guest's card at a restaurant.
func (repo *guestCardRepository) FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.GuestCard, error) {
	return repo.first(
		repo.db.WithContext(ctx).Where("user_id = ? AND restaurant_id = ?", userID, restaurantID),
		"failed to find guest card by user and restaurant",
	)
}

func (repo *guestCardRepository) first(query *gorm.DB, failure string) (*entity.GuestCard, error) {
	var cardM model.GuestCardModel
	if err := query.First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	return toGuestCardDomain(&cardM), nil
}

// UpdateStatus changes the card's lifecycle state.
func (repo *guestCardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CardStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GuestCardModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update guest card status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// UpdateTier assigns the card's tier and records whether an admin chose it.
func (repo *guestCardRepository) UpdateTier(ctx context.Context, id uuid.UUID, assignment entity.TierAssignment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GuestCardModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_tier_id":    assignment.TierID,
			"tier_override":      assignment.Override,
			"last_tier_check_at": assignment.CheckedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update guest card tier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// CountByTier counts the cards assigned to a tier.
func (repo *guestCardRepository) CountByTier(ctx context.Context, tierID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.GuestCardModel{}).
		Where("current_tier_id = ?", tierID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count guest cards by tier")
	}

	return count, nil
}

func toGuestCardDomain(data *model.GuestCardModel) *entity.GuestCard {
	return &entity.GuestCard{
		ID:                data.ID,
		UserID:            data.UserID,
		RestaurantID:      data.RestaurantID,
		CurrentPoints:     data.CurrentPoints,
		TotalPointsEarned: data.TotalPointsEarned,
		LedgerVersion:     data.LedgerVersion,
		CurrentTierID:     data.CurrentTierID,
		TierOverride:      data.TierOverride,
		Status:            entity.CardStatus(data.Status),
		LastUsedAt:        data.LastUsedAt,
		LastTierCheckAt:   data.LastTierCheckAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromGuestCardDomain(data *entity.GuestCard) *model.GuestCardModel {
	return &model.GuestCardModel{
		ID:                data.ID,
		UserID:            data.UserID,
		RestaurantID:      data.RestaurantID,
		CurrentPoints:     data.CurrentPoints,
		TotalPointsEarned: data.TotalPointsEarned,
		LedgerVersion:     data.LedgerVersion,
		CurrentTierID:     data.CurrentTierID,
		TierOverride:      data.TierOverride,
		Status:            string(data.Status),
		LastUsedAt:        data.LastUsedAt,
		LastTierCheckAt:   data.LastTierCheckAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
