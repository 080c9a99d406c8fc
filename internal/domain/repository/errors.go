// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "loyalty/internal/errors"

// Domain-specific persistence errors. Services translate them into domain errors.
var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrCardNotFound        = errors.New("guest card not found")
	ErrDuplicateCard       = errors.New("guest card already exists")
	ErrIdentifierNotFound  = errors.New("card identifier not found")
	ErrDuplicateIdentifier = errors.New("card identifier code already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateReversal   = errors.New("transaction is already reversed")
	ErrTierNotFound        = errors.New("loyalty tier not found")
	ErrDuplicateTierLevel  = errors.New("loyalty tier level already exists")
	ErrRewardNotFound      = errors.New("reward not found")
	ErrRedemptionNotFound  = errors.New("reward redemption not found")
	ErrDuplicateRedemption = errors.New("reward redemption code already exists")

	// ErrNegativeBalance is returned by LedgerRepository.ApplyChange when a change
	// that requires a non-negative result would overdraw the card.
	ErrNegativeBalance = errors.New("point change would overdraw the card")
)
