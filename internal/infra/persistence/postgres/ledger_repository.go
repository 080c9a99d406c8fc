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

// errLedgerContention means another writer advanced the card between lock and write.
var errLedgerContention = errors.New("point ledger was modified concurrently")

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

// ApplyChange appends one entry to the card's chain and moves the balance with it.
func (repo *ledgerRepository) ApplyChange(ctx context.Context, change entity.PointChange) (*repository.LedgerResult, error) {
	db := repo.db.WithContext(ctx)

	var cardM model.GuestCardModel
	if err := forUpdate(db).Where("id = ?", change.CardID).First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to lock guest card for ledger change")
	}

	before := cardM.CurrentPoints
	after := before + change.Delta
	if change.RequireNonNegative && after < 0 {
		return nil, repository.ErrNegativeBalance
	}

	at := change.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	entryM := &model.PointLogModel{
		ID:            uuid.New(),
		CardID:        cardM.ID,
		Sequence:      cardM.LedgerVersion + 1,
		Delta:         change.Delta,
		Reason:        string(change.Reason),
		BalanceBefore: before,
		BalanceAfter:  after,
		ReferenceID:   change.ReferenceID,
		Note:          change.Note,
		CreatedBy:     change.CreatedBy,
		CreatedAt:     at,
	}
	if err := db.Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, errors.WithStack(errLedgerContention)
		}

		return nil, errors.Wrap(err, "failed to append point log entry")
	}

	earned := cardM.TotalPointsEarned
	if change.Delta > 0 && change.Reason.CountsAsEarned() {
		earned += change.Delta
	}

	updates := map[string]any{
		"current_points":      after,
		"total_points_earned": earned,
		"ledger_version":      entryM.Sequence,
		"updated_at":          at,
	}
	if change.TouchLastUsed {
		updates["last_used_at"] = at
	}

	// The version guard keeps dialects without FOR UPDATE from losing an update.
	result := db.Model(&model.GuestCardModel{}).
		Where("id = ? AND ledger_version = ?", cardM.ID, cardM.LedgerVersion).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update guest card balance")
	}
	if result.RowsAffected == 0 {
		return nil, errors.WithStack(errLedgerContention)
	}

	cardM.CurrentPoints = after
	cardM.TotalPointsEarned = earned
	cardM.LedgerVersion = entryM.Sequence
	cardM.UpdatedAt = at
	if change.TouchLastUsed {
		cardM.LastUsedAt = &at
	}

	return &repository.LedgerResult{
		Entry: toPointLogDomain(entryM),
		Card:  toGuestCardDomain(&cardM),
	}, nil
}

// ListByCard returns the chain in order.
func (repo *ledgerRepository) ListByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.PointLogEntry, error) {
	var entryModels []*model.PointLogModel
	err := repo.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("sequence ASC").
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list point log entries")
	}

	entries := make([]*entity.PointLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toPointLogDomain(entryM))
	}

	return entries, nil
}

func toPointLogDomain(data *model.PointLogModel) *entity.PointLogEntry {
	return &entity.PointLogEntry{
		ID:            data.ID,
		CardID:        data.CardID,
		Sequence:      data.Sequence,
		Delta:         data.Delta,
		Reason:        entity.PointReason(data.Reason),
		BalanceBefore: data.BalanceBefore,
		BalanceAfter:  data.BalanceAfter,
		ReferenceID:   data.ReferenceID,
		Note:          data.Note,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
	}
}
