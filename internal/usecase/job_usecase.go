package usecase

import (
	"context"

	"github.com/google/uuid"
)

// JobName identifies a maintenance job.
type JobName string

const (
	JobRotateCodes        JobName = "rotate-codes"
	JobCleanupIdentifiers JobName = "cleanup-identifiers"
	JobExpireRedemptions  JobName = "expire-redemptions"
)

// IsValid checks if the JobName is a known job.
func (j JobName) IsValid() bool {
	switch j {
	case JobRotateCodes, JobCleanupIdentifiers, JobExpireRedemptions:
		return true
	default:
		return false
	}
}

// JobCommand requests one run of a maintenance job. RestaurantID is required
// for code jobs and optional for expiry sweeps. A nil KeepCount uses the
// configured default.
type JobCommand struct {
	Job          JobName    `json:"job"`
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty"`
	KeepCount    *int       `json:"keep_count,omitempty"`
}

// JobResult reports how many records a job touched.
type JobResult struct {
	Job      JobName `json:"job"`
	Affected int     `json:"affected"`
}

// JobUsecase runs scheduled maintenance. Every job is safe to repeat.
type JobUsecase interface {
	Run(ctx context.Context, cmd JobCommand) (*JobResult, error)
}
