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

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create persists a purchase or refund row.
func (repo *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}

	txnM := fromTransactionDomain(txn)
	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReversal
		}

		return errors.Wrap(err, "failed to create transaction")
	}

	txn.CreatedAt = txnM.CreatedAt
	txn.UpdatedAt = txnM.UpdatedAt

	return nil
}

// FindByID retrieves a transaction.
func (repo *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find transaction by id")
}

// LockByID retrieves a transaction and locks its row.
func (repo *transactionRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return repo.first(forUpdate(repo.db.WithContext(ctx)).Where("id = ?", id), "failed to lock transaction")
}

// FindReversalOf retrieves the refund row of a purchase.
func (repo *transactionRepository) FindReversalOf(ctx context.Context, originalID uuid.UUID) (*entity.Transaction, error) {
	return repo.first(
		repo.db.WithContext(ctx).Where("reference_transaction_id = ?", originalID),
		"failed to find transaction reversal",
	)
}

func (repo *transactionRepository) first(query *gorm.DB, failure string) (*entity.Transaction, error) {
	var txnM model.TransactionModel
	if err := query.First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	return toTransactionDomain(&txnM), nil
}

// UpdateStatus moves a transaction to another settlement state.
func (repo *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update transaction status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:                     data.ID,
		CardID:                 data.CardID,
		RestaurantID:           data.RestaurantID,
		StaffID:                data.StaffID,
		Type:                   entity.TransactionType(data.Type),
		Amount:                 data.Amount,
		PointsEarned:           data.PointsEarned,
		BasePoints:             data.BasePoints,
		Multiplier:             data.Multiplier,
		Status:                 entity.TransactionStatus(data.Status),
		ReferenceTransactionID: data.ReferenceTransactionID,
		FlaggedForReview:       data.FlaggedForReview,
		Reason:                 data.Reason,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:                     data.ID,
		CardID:                 data.CardID,
		RestaurantID:           data.RestaurantID,
		StaffID:                data.StaffID,
		Type:                   string(data.Type),
		Amount:                 data.Amount,
		PointsEarned:           data.PointsEarned,
		BasePoints:             data.BasePoints,
		Multiplier:             data.Multiplier,
		Status:                 string(data.Status),
		ReferenceTransactionID: data.ReferenceTransactionID,
		FlaggedForReview:       data.FlaggedForReview,
		Reason:                 data.Reason,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
