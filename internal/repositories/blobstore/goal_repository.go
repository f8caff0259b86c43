package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	"github.com/akerley/pocketledger/internal/core/ports/store"
)

// GoalRepository persists the savings-goal collection. Goals never share a
// writer with the ledger collections.
type GoalRepository struct {
	store store.Store
}

var _ portsrepo.GoalRepository = (*GoalRepository)(nil)

func NewGoalRepository(s store.Store) *GoalRepository {
	return &GoalRepository{store: s}
}

func (r *GoalRepository) LoadGoals(ctx context.Context) ([]domain.Goal, error) {
	raw, ok, err := r.store.Get(ctx, store.KeyGoals)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", apperrors.ErrStoreUnavailable, store.KeyGoals, err)
	}
	if !ok || raw == "" {
		return []domain.Goal{}, nil
	}

	var goals []domain.Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		slog.WarnContext(ctx, "Malformed goal collection, treating as empty",
			slog.String("key", store.KeyGoals), slog.String("error", err.Error()))
		return []domain.Goal{}, nil
	}
	return goals, nil
}

func (r *GoalRepository) SaveGoals(ctx context.Context, goals []domain.Goal) error {
	data, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", store.KeyGoals, err)
	}
	if err := r.store.Set(ctx, store.KeyGoals, string(data)); err != nil {
		return fmt.Errorf("%w: writing %q: %v", apperrors.ErrStoreUnavailable, store.KeyGoals, err)
	}
	return nil
}
