package repositories

import (
	"context"

	"github.com/akerley/pocketledger/internal/core/domain"
)

// GoalRepository owns the persisted savings-goal collection. Goals are a
// parallel subsystem: they never share a writer with the ledger collections.
type GoalRepository interface {
	// LoadGoals reads the full goal collection. It returns an empty slice
	// (never nil) when no record exists.
	LoadGoals(ctx context.Context) ([]domain.Goal, error)

	// SaveGoals replaces the goal collection.
	SaveGoals(ctx context.Context, goals []domain.Goal) error
}
