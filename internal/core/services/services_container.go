package services

import (
	"github.com/akerley/pocketledger/internal/core/domain"
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/akerley/pocketledger/internal/core/ports/services"
)

// NewServiceContainer wires every application service from the repository
// provider. Handlers receive this container at route registration.
// defaultCurrency is the configured currency for wallets created without one
// when the profile carries no default.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, defaultCurrency domain.Currency) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Wallet:      NewWalletService(repos.LedgerRepo, repos.SettingsRepo, defaultCurrency),
		Transaction: NewTransactionService(repos.LedgerRepo),
		Goal:        NewGoalService(repos.GoalRepo),
		Reporting:   NewReportingService(repos.LedgerRepo),
		Settings:    NewSettingsService(repos.SettingsRepo, repos.LedgerRepo),
	}
}
