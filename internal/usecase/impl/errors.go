package impl

import (
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"

	"github.com/pkg/errors"
)

// repoErrorMapping pairs repository sentinels with the domain errors callers see.
var repoErrorMapping = []struct {
	repoErr   error
	domainErr error
}{
	{repository.ErrRestaurantNotFound, domainerrors.ErrRestaurantNotFound},
	{repository.ErrCardNotFound, domainerrors.ErrCardNotFound},
	{repository.ErrDuplicateCard, domainerrors.ErrCardAlreadyExists},
	{repository.ErrIdentifierNotFound, domainerrors.ErrIdentifierNotFound},
	{repository.ErrTransactionNotFound, domainerrors.ErrTransactionNotFound},
	{repository.ErrDuplicateReversal, domainerrors.ErrAlreadyRefunded},
	{repository.ErrTierNotFound, domainerrors.ErrTierNotFound},
	{repository.ErrDuplicateTierLevel, domainerrors.ErrTierLevelTaken},
	{repository.ErrRewardNotFound, domainerrors.ErrRewardNotFound},
	{repository.ErrRedemptionNotFound, domainerrors.ErrRedemptionNotFound},
	{repository.ErrNegativeBalance, domainerrors.ErrInsufficientPoints},
}

// mapRepoError translates known repository errors and wraps the rest with action.
func mapRepoError(err error, action string) error {
	if err == nil {
		return nil
	}

	for _, m := range repoErrorMapping {
		if errors.Is(err, m.repoErr) {
			return m.domainErr
		}
	}

	return errors.Wrap(err, action)
}
