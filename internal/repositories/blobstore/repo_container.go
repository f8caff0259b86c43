package blobstore

import (
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	"github.com/akerley/pocketledger/internal/core/ports/store"
)

// NewRepositoryProvider builds all blob-store repositories over one store.
func NewRepositoryProvider(s store.Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:   NewLedgerRepository(s),
		GoalRepo:     NewGoalRepository(s),
		SettingsRepo: NewSettingsRepository(s),
	}
}
