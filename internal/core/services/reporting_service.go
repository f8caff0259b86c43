package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/akerley/pocketledger/internal/core/domain"
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/akerley/pocketledger/internal/core/ports/services"
	"github.com/akerley/pocketledger/internal/dto"
	"github.com/akerley/pocketledger/internal/utils/accounting"
)

// reportingService implements the ReportingService interface.
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledgerRepo portsrepo.LedgerReader) portssvc.ReportingService {
	return &reportingService{ledgerRepo: ledgerRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// TotalsByCurrency sums wallet balances per currency. Rows come back in the
// supported-currency order so output is deterministic; currencies outside
// the supported set (legacy or hand-edited records) follow, sorted by code,
// so no wallet's balance ever vanishes from the report.
func (s *reportingService) TotalsByCurrency(ctx context.Context) (*dto.TotalsByCurrencyResponse, error) {
	ledger, err := s.ledgerRepo.LoadLedger(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for currency totals")
		return nil, err
	}

	totals := accounting.TotalsByCurrency(ledger.Wallets)

	resp := &dto.TotalsByCurrencyResponse{Totals: make([]dto.CurrencyTotal, 0, len(totals))}
	for _, currency := range domain.SupportedCurrencies() {
		total, ok := totals[currency]
		if !ok {
			continue
		}
		delete(totals, currency)
		resp.Totals = append(resp.Totals, dto.CurrencyTotal{
			Currency: currency,
			Symbol:   currency.Symbol(),
			Total:    total,
		})
	}

	if len(totals) > 0 {
		unknown := make([]domain.Currency, 0, len(totals))
		for currency := range totals {
			unknown = append(unknown, currency)
		}
		sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
		for _, currency := range unknown {
			s.LogWarn(ctx, "Wallet balance in unsupported currency included in totals",
				slog.String("currency", string(currency)))
			resp.Totals = append(resp.Totals, dto.CurrencyTotal{
				Currency: currency,
				Symbol:   currency.Symbol(),
				Total:    totals[currency],
			})
		}
	}
	return resp, nil
}
