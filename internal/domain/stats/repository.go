package stats

import (
	"context"
)

type Repository interface {
	// Get devolve a linha singleton, criando-a zerada se ainda não existir.
	Get(ctx context.Context) (*GlobalStats, error)
	// Recompute soma todas as contas e grava total_bills_amount, unit_target
	// e last_updated por merge, preservando override e unclaimed.
	Recompute(ctx context.Context, unitCount int) (*GlobalStats, error)
	SetOverride(ctx context.Context, enabled bool, target float64) error
	SetUnclaimed(ctx context.Context, amount float64) error
}
