package service

// LoyaltyMetrics records counters about codes and the ledger.
type LoyaltyMetrics interface {
	CodeGenerated(restaurantID string)
	CodeValidated(result string)
	DuplicateScan(restaurantID string)
	LedgerChange(reason string, delta int64)
	TierChanged(trigger string)
	RedemptionTransition(status string)
	BatchProcessed(job string, succeeded, failed int)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) CodeGenerated(string) {}
func (NopMetrics) CodeValidated(string) {}
func (NopMetrics) DuplicateScan(string) {}
func (NopMetrics) LedgerChange(string, int64) {}
func (NopMetrics) TierChanged(string) {}
func (NopMetrics) RedemptionTransition(string) {}
func (NopMetrics) BatchProcessed(string, int, int) {}
